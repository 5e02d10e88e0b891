// Package glasses is the root of the glasses module: exact minimum operation
// counts for the water-glasses puzzle, from the two-jug classic to any number
// of containers.
//
// 🚀 What is in the box?
//
//	• glasses/     - the solver: feasibility pre-check, boundary shortcut,
//	                 two-container closed form and multi-container search
//	• bfs/         - generic breadth-first search over implicit state spaces,
//	                 with hooks, depth and state budgets, context cancellation
//	• fingerprint/ - 64-bit hashing of integer level vectors
//	• numeric/     - gcd and modular inverse over any integer type
//	• cmd/glasses  - the command-line front end (solve, sweep)
//
// Quick example (capacities 3 and 5, reach 4 in the larger glass):
//
//	 fill 5   (0,5)    fill 3   (2,5)
//	 pour     (3,2)    pour     (3,4)
//	 empty 3  (0,2)    empty 3  (0,4)
//	 pour     (2,0)
//
//	seven operations, the minimum.
//
//	go install github.com/katalvlaran/glasses/cmd/glasses@latest
package glasses
