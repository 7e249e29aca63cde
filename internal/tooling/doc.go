// Package tooling implements the one-shot maintenance commands: packaging
// the profiles into a distribution directory and checking that a project
// tree has the profiles the server needs.
package tooling
