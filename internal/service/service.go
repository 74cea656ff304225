// Package service contains the business logic.
//
// It sits between the handler layer and the external providers.
// It receives validated data from the handler, composes what must
// be sent and hands it to the delivery capability.
package service
