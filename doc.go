// Package theseus walks and solves grid mazes: an agent that keeps its left
// hand on the wall, and a breadth-first search for the shortest route.
//
// 🚀 What is in the box?
//
//	• maze: immutable W/P/T/D grid, loader (fixed or inferred size), regions
//	• lefthand: left-hand-rule walker with step cap and per-step hook
//	• bfs: shortest path from the start to the nearest destination
//	• result: the combined record and its JSON, YAML and text encoders
//	• render: text (optionally coloured) view of a maze and a trail
//	• pipeline: walker + solver + assembler, single maze or a bounded batch
//	• config, logging: YAML/.env/THESEUS_* settings and the zap logger
//	• cmd/theseus: the solve, render, inspect and config commands
//
// Quick ASCII example:
//
//	W W W
//	W P D      walker: N, E (2 moves)
//	W T W      bfs:    2 moves
//
// Cells: W wall, P path, T start (Theseus), D destination. The agent only
// ever stands on P or D after leaving T, and never re-enters T.
//
//	go install github.com/katalvlaran/theseus/cmd/theseus@latest
package theseus
