// Package pkg provides the core libraries for Pinwall board arrangement.
//
// # Overview
//
// Pinwall arranges sticky-note planning boards: typed notes on a large 2D
// canvas, connected by strings, positioned by auto-layout strategies. The
// pkg directory is organized into five main areas:
//
//  1. [board] - Board model (items, kinds, connections, adjacency index)
//  2. [layout] - Attachment resolution and arrangement strategies
//  3. [pipeline] - Orchestration (resolve → arrange, with result caching)
//  4. [cache], [store] - Infrastructure (arrangement cache, board persistence)
//  5. [server] - HTTP API over the pipeline and the store
//
// # Architecture
//
// The typical data flow through Pinwall:
//
//	Board JSON (notes + strings)
//	         ↓
//	    [layout] ResolveAttachments (ideas find their anchor)
//	         ↓
//	    [layout] Apply (strategy computes positions)
//	         ↓
//	    Arranged board JSON
//
// # Quick Start
//
// Arrange a board with the organized strategy:
//
//	import (
//	    "github.com/pinwall/pinwall/pkg/board"
//	    "github.com/pinwall/pinwall/pkg/layout"
//	)
//
//	b, err := board.ReadFile("board.json")
//	if err != nil {
//	    return err
//	}
//	items, err := layout.Apply(layout.StrategyOrganized, b.Items, 3000, 2000)
//	if err != nil {
//	    return err
//	}
//	b.Items = items
//	return board.WriteFile(b, "board.json")
//
// Or run the whole pipeline with caching through [pipeline.Runner].
package pkg
