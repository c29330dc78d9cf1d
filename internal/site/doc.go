// Package site owns the explicit render environment handed to toolbar
// contributors.
//
// Ownership boundary:
// - viewer identity and capability sets
//
// - component activation registry
//
// - member, login, and signup URL builders
//
// - member directory lookups
//
// Authentication and session handling live outside this module.
package site
