package profile

// Controller owns a mutable UserProfile and submits it.
type Controller struct {
	profile   UserProfile
	generator IDGenerator
}

// NewController creates a controller with an empty profile.
// A nil generator falls back to NewRandomGenerator.
func NewController(gen IDGenerator) *Controller {
	if gen == nil {
		gen = NewRandomGenerator()
	}
	return &Controller{generator: gen}
}

// Profile returns a snapshot of the current record.
func (c *Controller) Profile() UserProfile {
	return c.profile
}

// UpdateField assigns value to field f without validation.
func (c *Controller) UpdateField(f Field, value string) {
	c.profile = Update(c.profile, f, value)
}

// Submit validates the profile and assigns a new order id.
//
// If any required field is missing the record is not modified and a
// *SubmissionError matching ErrIncomplete is returned. Submitting again after
// a success replaces the order id; it is never cleared.
func (c *Controller) Submit() (string, error) {
	if missing := c.profile.Missing(); len(missing) > 0 {
		return "", NewIncompleteError(missing)
	}

	id := c.generator.NextOrderID()
	c.profile.OrderID = id
	return id, nil
}
