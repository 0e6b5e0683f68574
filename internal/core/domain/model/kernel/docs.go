// Package kernel holds the value objects shared by the order, delivery, agent
// and menu models:
//   - UUID: identifier of every aggregate and of the stores that own them
//   - Money: amounts in minor currency units with half-up percentage rounding
//
// Both are immutable. Their zero values are either invalid (UUID) or zero (Money).
package kernel
