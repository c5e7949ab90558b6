// Package blueprint describes vessels declaratively as a named list of part
// requests and stages them into a core.Builder.
//
// Blueprints are YAML documents:
//
//	name: Sara
//	parts:
//	  - kind: cargo
//	    size: 10
//	    level: 1
//	  - kind: solar_panels
//	    size: 10
//	    level: 1
//
// Unlike the core, blueprints are validated on load: every entry needs a known
// kind and a positive size.
package blueprint
