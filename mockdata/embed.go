// Package mockdata carries the static storefront data the services load at
// startup: the product/category snapshot and the seed order list.
package mockdata

import _ "embed"

//go:embed products.json
var Products []byte

//go:embed categories.json
var Categories []byte

//go:embed orders.json
var Orders []byte
