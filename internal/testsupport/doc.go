// Package testsupport holds helpers shared by package tests: temp-dir backed
// configs and roster/deck fixtures.
package testsupport
