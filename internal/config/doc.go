// Package config loads the reddit credentials redditmodqueue authenticates with.
//
// # Sources
//
// Load resolves each setting in this order:
//
//  1. The process environment, REDDITSUCKS_<NAME>
//  2. An env file (default: .env in the working directory)
//  3. The empty string
//
// A missing env file is not an error. Values are trimmed of surrounding
// whitespace.
//
// # Settings
//
//   - REDDITSUCKS_USERNAME, REDDITSUCKS_PASSWORD: the moderator account
//   - REDDITSUCKS_CLIENT_ID, REDDITSUCKS_CLIENT_SECRET: script-app credentials
//   - REDDITSUCKS_REDIRECT_URI: the app's registered redirect URI
//   - REDDITSUCKS_USER_AGENT: sent with every request
//   - REDDITSUCKS_LOG_FILE: optional debug log destination
//
// Example .env:
//
//	REDDITSUCKS_USERNAME=modbot
//	REDDITSUCKS_PASSWORD=hunter2
//	REDDITSUCKS_CLIENT_ID=abc123
//	REDDITSUCKS_CLIENT_SECRET=s3cr3t
//	REDDITSUCKS_REDIRECT_URI=http://localhost:8080
//	REDDITSUCKS_USER_AGENT="redditmodqueue by u/modbot"
//
// Settings is a plain value built once at startup and handed to
// reddit.NewClient. There is no package-level state.
package config
