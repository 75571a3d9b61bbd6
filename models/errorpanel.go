package models

// ErrorPanel holds one message slot per bound field. A slot is visible
// exactly when it holds a message.
type ErrorPanel struct {
	keys     []FieldKey
	messages map[FieldKey]string
}

// NewErrorPanel binds a slot for each key; keys keep their given order
func NewErrorPanel(keys ...FieldKey) *ErrorPanel {
	p := &ErrorPanel{messages: make(map[FieldKey]string, len(keys))}
	for _, k := range keys {
		if _, ok := p.messages[k]; ok {
			continue
		}
		p.keys = append(p.keys, k)
		p.messages[k] = ""
	}
	return p
}

// ShowError renders msg into the key's slot. Unbound keys are ignored.
func (p *ErrorPanel) ShowError(key FieldKey, msg string) {
	if _, ok := p.messages[key]; !ok {
		return
	}
	p.messages[key] = msg
}

// ClearError empties and hides the key's slot
func (p *ErrorPanel) ClearError(key FieldKey) {
	if _, ok := p.messages[key]; !ok {
		return
	}
	p.messages[key] = ""
}

// ClearAll clears every bound slot
func (p *ErrorPanel) ClearAll() {
	for _, k := range p.keys {
		p.ClearError(k)
	}
}

// Message returns the slot's current message, empty when hidden
func (p *ErrorPanel) Message(key FieldKey) string {
	return p.messages[key]
}

// Visible reports whether the key's slot is showing a message
func (p *ErrorPanel) Visible(key FieldKey) bool {
	return p.messages[key] != ""
}

// Keys returns the bound keys in binding order
func (p *ErrorPanel) Keys() []FieldKey {
	return append([]FieldKey(nil), p.keys...)
}

// Visibles returns the messages currently shown, in binding order
func (p *ErrorPanel) Visibles() []string {
	var out []string
	for _, k := range p.keys {
		if msg := p.messages[k]; msg != "" {
			out = append(out, msg)
		}
	}
	return out
}

// Any reports whether any slot is visible
func (p *ErrorPanel) Any() bool {
	for _, k := range p.keys {
		if p.messages[k] != "" {
			return true
		}
	}
	return false
}
