// Package fakes holds in-memory repository implementations for service tests.
package fakes
