// Package app is the composition root for redditmodqueue.
//
// # Overview
//
// Run wires settings, preferences, the reddit Gateway and the UI together:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       REDDITSUCKS_* environment and .env
//	       ├─────> tea.LogToFile()     only when REDDITSUCKS_LOG_FILE is set
//	       ├─────> prefs.Load()        theme
//	       ├─────> reddit.NewClient()  OAuth2 password grant client
//	       ├─────> FetchQueue()        initial mod queue
//	       └─────> ui.Run()            browser (blocks)
//
// # Error Handling
//
// Every failure is fatal and returned wrapped with the step that failed
// ("load settings", "init reddit client", "fetch mod queue"). Errors raised
// inside the UI end the session and are returned unchanged from ui.Run.
// There are no retries and no background work.
package app
