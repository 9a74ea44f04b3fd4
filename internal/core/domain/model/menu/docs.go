// Package menu provides the MenuItem aggregate: the purchasable dishes the
// restaurant offers.
//
// Key business rules:
//   - Prices are non-negative decimals; order lines snapshot them at ordering
//     time, so menu edits never rewrite history
//   - Preparation time drives order prep estimates and defaults to 15 minutes
//   - Dishes referenced by order lines are soft-deleted (deleted + unavailable)
//     instead of removed, keeping order history intact
package menu
