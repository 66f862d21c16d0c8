package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMember_Borrow(t *testing.T) {
	m := New("Alice", "M1")

	m.Borrow("111")
	m.Borrow("222")
	m.Borrow("111")

	assert.Equal(t, []string{"111", "222"}, m.BorrowedBooks)
	assert.True(t, m.Active())
	assert.True(t, m.Has("222"))
}

func TestMember_Return(t *testing.T) {
	t.Run("on record", func(t *testing.T) {
		m := New("Alice", "M1")
		m.Borrow("111")
		m.Borrow("222")

		assert.True(t, m.Return("111"))
		assert.Equal(t, []string{"222"}, m.BorrowedBooks)
	})

	t.Run("not on record", func(t *testing.T) {
		m := New("Alice", "M1")
		m.Borrow("111")

		assert.False(t, m.Return("999"))
		assert.Equal(t, []string{"111"}, m.BorrowedBooks)
	})

	t.Run("last book makes member inactive", func(t *testing.T) {
		m := New("Alice", "M1")
		m.Borrow("111")

		assert.True(t, m.Return("111"))
		assert.False(t, m.Active())
		assert.Empty(t, m.BorrowedBooks)
	})
}

func TestMember_CloneIsDetached(t *testing.T) {
	m := New("Alice", "M1")
	m.Borrow("111")

	c := m.Clone()
	c.Borrow("222")

	assert.Equal(t, []string{"111"}, m.BorrowedBooks)
	assert.Equal(t, []string{"111", "222"}, c.BorrowedBooks)
}

func TestMember_String(t *testing.T) {
	m := New("Alice", "M1")
	m.Borrow("111")

	assert.Equal(t, "Alice (ID: M1) - Borrowed: 1", m.String())
}
