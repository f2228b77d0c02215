package bitrow

// Single-bit convenience wrappers. Flag fields are the most common
// one-bit case, so booleans get a direct form.

// PushBool pushes a single bit.
func (r *Row[T]) PushBool(v bool) error {
	var b T
	if v {
		b = 1
	}
	return r.Push(b, 1)
}

// PopBool pops a single bit as a bool.
func (r *Row[T]) PopBool() (bool, error) {
	v, err := r.Pop(1)
	return v != 0, err
}

// PopTopBool pops the most recently pushed bit as a bool.
func (r *Row[T]) PopTopBool() (bool, error) {
	v, err := r.PopTop(1)
	return v != 0, err
}
