// Package profile provides the user account aggregate for the ordering
// system. A Profile extends an identity issued by the external authentication
// provider with the attributes the core logic needs: display name, role,
// last-known location, and an online/offline availability flag.
//
// Key business rules:
//   - One profile per identity, created idempotently at signup
//   - Role is one of Customer, Owner, Delivery, immutable outside the
//     privileged ChangeRole operation
//   - Location and availability are self-service fields writable only by the
//     profile holder
//   - Account creation time orders couriers by seniority during
//     auto-assignment
package profile
