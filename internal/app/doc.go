// Package app provides the orchestration layer for the dog gallery.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the
// dog.ceo client, the view-state store and the UI. It is the composition root
// where all dependencies are initialized and connected.
//
// # Architecture
//
//  1. Load configuration (.env, ~/.config/doggallery/config.toml, DOGGALLERY_* env)
//  2. Open the rotated log file
//  3. Load saved preferences (theme, grid columns)
//  4. Create the HTTP client for the dog.ceo API
//  5. Create the shared state.Store
//  6. Watch the context so a signal closes the store
//  7. Start the TUI and block until the user quits
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read config file and environment
//	       ├─────> logger.New()       Open log file
//	       ├─────> prefs.Load()       Theme and column preferences
//	       ├─────> dogapi.NewClient() Create HTTP client
//	       ├─────> state.Store{}      Shared view state
//	       ├─────> watchShutdown()    Close store on cancellation
//	       └─────> ui.Run()           Start TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file present but unreadable or invalid
//   - Log file cannot be opened
//   - Invalid API base URL
//
// Recoverable errors (logged, startup continues):
//   - Preferences file unreadable or invalid
//
// Fetch failures never reach this package; the UI shows them as the error
// banner and offers a retry.
//
// # Usage Example
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := app.Run(ctx, app.Options{Version: "1.0.0"}); err != nil {
//		log.Fatalf("doggallery failed: %v", err)
//	}
package app
