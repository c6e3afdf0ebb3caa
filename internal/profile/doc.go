// Package profile implements the profile form controller for orderchat.
//
// The package owns the UserProfile record that the user fills in on the form
// screen, a field-keyed reducer for editing it, and the submit operation that
// validates the record and assigns an order identifier.
//
// # Editing
//
// Fields are edited through a single reducer rather than one setter per field:
//
//	p = profile.Update(p, profile.FieldFirstName, "Ann")
//	p = profile.Update(p, profile.FieldGender, "female")
//
// Update never validates. Every keystroke is stored as typed.
//
// # Submitting
//
// A Controller wraps a profile together with an IDGenerator:
//
//	c := profile.NewController(profile.NewRandomGenerator())
//	c.UpdateField(profile.FieldFirstName, "Ann")
//	...
//	id, err := c.Submit()
//	if errors.Is(err, profile.ErrIncomplete) {
//	    // show "Please fill in all the fields."
//	}
//
// Submit requires first name, last name, address and phone to be non-empty and
// gender to be one of male, female or other. On failure the record is left
// untouched. On success the generated identifier is stored in OrderID.
//
// # Order Identifiers
//
// Identifiers have the form "ORD-<n>" where n is a decimal integer in
// [0, 10000). RandomGenerator draws n from a non-cryptographic uniform source;
// collisions are possible and are not detected. SequenceGenerator returns a
// fixed list of identifiers and exists for tests and reproducible demos.
package profile
