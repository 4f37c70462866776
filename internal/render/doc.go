// Package render formats fixed-capacity string state and scenario results
// for the terminal.
//
// Dump shows every storage cell, so the terminator position and the stale
// units behind it stay visible:
//
//	narrow  capacity=5  length=2  "ab"
//	0  1  2  3  4  5
//	a  b  \0 d  e  \0
//	=  =  ^  .  .  .
//
// Colors follow the writer's terminal unless disabled.
package render
