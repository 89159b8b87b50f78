// Package cli defines the redditmodqueue command line.
//
//	redditmodqueue queue --subreddit <name>
//
// The queue command hands off to app.Run; errors are returned to the caller
// unprinted so main can report them once.
package cli
