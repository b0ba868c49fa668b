package ppe

import "math/big"

// Scalar is an element of Z_Order, represented outside gnark-crypto's
// own fr.Element as a plain *big.Int, always kept reduced mod Order by
// this package's helpers.
type Scalar = big.Int

// Order is the order of the BLS12-381 scalar field Fr, shared by G1, G2
// and GT. All scalar arithmetic in this package is reduced modulo Order.
var Order, _ = new(big.Int).SetString(
	"52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)
