// Package kernel contains the shared value objects of the storefront domain:
// identifiers, monetary amounts, and product colors. Value objects here are
// immutable, validated on construction, and safe to copy and compare.
package kernel
