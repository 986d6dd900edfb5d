// Command trackopt samples and optimizes animation keyframe tracks.
//
// Tracks are read as JSON from a file argument or stdin, in simple form
// ([1, 2, 3]) or complex form ([[x, y, z, time, "easeInQuad"], ...]).
//
// Usage:
//
//	trackopt sample --at 0.25,0.5 track.json
//	trackopt sample --bake 60 -p rotation track.json
//	trackopt optimize --passes 3 < track.json > optimized.json
//	trackopt report --only slopeSimilarity track.json
//	trackopt eases --at 0.1,0.5,0.9
//	trackopt config init --path trackopt.toml
//
// Settings come from the TOML file named by --config; flags override them.
package main
