// Package aassert provides assertions beyond what stretchr/testify/assert offers.
// The assertions follow the design decisions of testify/assert as close as possible:
// they take the *testing.T first and return a bool indicating success.
package aassert
