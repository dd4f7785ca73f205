// Package delivery contains the Delivery aggregate: the moving entity whose
// location updates drive zone assignment and boundary alerting, together
// with its lifecycle status machine.
package delivery
