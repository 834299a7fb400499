// Package routejson decodes and validates the SimpleRouteJson board input:
// bounds, layer count, minimum trace width, obstacles, and connections.
//
// File parsing itself is out of scope for the core (spec.md §1 treats it as
// an external collaborator); this package exists because the core still
// needs a typed, validated representation to hand to the Mesh Builder, and
// the up-front malformed-input rejection named in spec.md §7 has to live
// somewhere concrete.
package routejson
