package stage

import (
	"context"
	"unicode/utf8"

	"github.com/phanxgames/cinescroll/contact"
)

// Form field indices.
const (
	fieldName = iota
	fieldEmail
	fieldCompany
	fieldMessage
	fieldCount
)

const maxFieldLen = 240

var fieldLabels = [fieldCount]string{"Name", "Email", "Company", "Message"}

// contactForm is the in-window editor for the contact section. focus is -1
// when no field has keyboard focus.
type contactForm struct {
	form   *contact.Form
	fields [fieldCount]string
	focus  int
}

func newContactForm(s contact.Submitter) *contactForm {
	return &contactForm{form: contact.NewForm(s), focus: -1}
}

// focused reports whether a field is taking keyboard input.
func (c *contactForm) focused() bool {
	return c.focus >= 0
}

// next moves focus to the following field, wrapping around.
func (c *contactForm) next() {
	c.focus = (c.focus + 1) % fieldCount
}

func (c *contactForm) blur() {
	c.focus = -1
}

// typeRunes appends printable input to the focused field.
func (c *contactForm) typeRunes(rs []rune) {
	if !c.focused() {
		return
	}
	f := &c.fields[c.focus]
	for _, r := range rs {
		if r < 0x20 || r == 0x7f {
			continue
		}
		if utf8.RuneCountInString(*f) >= maxFieldLen {
			return
		}
		*f += string(r)
	}
}

// backspace deletes the last rune of the focused field.
func (c *contactForm) backspace() {
	if !c.focused() {
		return
	}
	f := &c.fields[c.focus]
	if *f == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(*f)
	*f = (*f)[:len(*f)-size]
}

func (c *contactForm) payload() contact.Payload {
	return contact.Payload{
		Name:    c.fields[fieldName],
		Email:   c.fields[fieldEmail],
		Company: c.fields[fieldCompany],
		Message: c.fields[fieldMessage],
	}
}

// submit starts sending the form. Fields are cleared once the relay accepts
// the submission (see poll).
func (c *contactForm) submit(ctx context.Context) {
	c.form.Submit(ctx, c.payload())
}

// poll collects a finished submission. It returns the current status.
func (c *contactForm) poll() contact.Status {
	before := c.form.Status()
	st := c.form.Poll()
	if before == contact.StatusPending && st == contact.StatusSuccess {
		c.fields = [fieldCount]string{}
		c.blur()
	}
	return st
}

// statusLine is the text shown under the form.
func (c *contactForm) statusLine() string {
	switch c.form.Status() {
	case contact.StatusPending:
		return "Sending..."
	case contact.StatusSuccess:
		return "Thanks! We'll be in touch."
	case contact.StatusError:
		if err := c.form.Err(); err != nil {
			return "Could not send: " + err.Error()
		}
		return "Could not send."
	default:
		return "Tab to edit, Enter to send"
	}
}
