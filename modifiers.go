package boolvec

// PushBack appends b, growing the storage if needed.
func (v *Vector) PushBack(b bool) error {
	if err := v.grow("push back", v.size+1); err != nil {
		return err
	}
	v.size++
	v.setBit(v.size-1, b)
	return nil
}

// PopBack removes and returns the last element.
func (v *Vector) PopBack() (bool, error) {
	if v.size == 0 {
		return false, ErrEmpty
	}
	last := v.bit(v.size - 1)
	v.setBit(v.size-1, false)
	v.size--
	return last, nil
}

// Insert inserts b before position i. i may equal Len().
func (v *Vector) Insert(i int, b bool) error {
	return v.InsertN(i, 1, b)
}

// InsertN inserts count copies of b before position i.
// On error the vector is unchanged.
func (v *Vector) InsertN(i, count int, b bool) error {
	if i < 0 || i > v.size {
		return indexError("insert", i, v.size)
	}
	if count < 0 {
		return ErrInvalidSize
	}
	if count == 0 {
		return nil
	}
	if limit := v.MaxSize(); count > limit-v.size {
		return &LengthError{Op: "insert", Requested: v.size + count, Max: limit}
	}

	if err := v.grow("insert", v.size+count); err != nil {
		return err
	}

	for j := v.size - 1; j >= i; j-- {
		v.setBit(j+count, v.bit(j))
	}
	v.fillRange(i, i+count, b)
	v.size += count
	return nil
}

// Erase removes the element at position i.
func (v *Vector) Erase(i int) error {
	if i < 0 || i >= v.size {
		return indexError("erase", i, v.size)
	}
	return v.EraseRange(i, i+1)
}

// EraseRange removes positions [first, last). Capacity is unchanged.
func (v *Vector) EraseRange(first, last int) error {
	if first < 0 || last > v.size || first > last {
		return indexError("erase", first, v.size)
	}
	n := last - first
	if n == 0 {
		return nil
	}

	for j := last; j < v.size; j++ {
		v.setBit(j-n, v.bit(j))
	}
	v.fillRange(v.size-n, v.size, false)
	v.size -= n
	return nil
}

// Resize changes Len to n. New elements are set to value.
// Shrinking keeps the capacity. On error the vector is unchanged.
func (v *Vector) Resize(n int, value bool) error {
	if n < 0 {
		return ErrInvalidSize
	}
	if n <= v.size {
		v.fillRange(n, v.size, false)
		v.size = n
		return nil
	}

	if err := v.grow("resize", n); err != nil {
		return err
	}
	v.fillRange(v.size, n, value)
	v.size = n
	return nil
}

// Clear removes all elements. Capacity is unchanged.
func (v *Vector) Clear() {
	clear(v.words[:v.usedWords()])
	v.size = 0
}
