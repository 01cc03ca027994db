// Package vault owns the on-disk content store. Every imported event gets a
// folder named by its identifier under the vault root; the folder create is
// atomic so duplicate imports fail cleanly instead of merging trees.
package vault
