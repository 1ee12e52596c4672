// Package youdao implements a client for the Youdao OCR HTTP API.
//
// The client submits an image and returns the recognized regions as a
// model.Result, ready for markdown conversion. Requests are signed with
// the v3 scheme (SHA-256 over the application key, truncated payload,
// salt, timestamp, and secret).
package youdao
