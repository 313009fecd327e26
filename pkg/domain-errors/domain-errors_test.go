package domainerrors

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorMessage() {
	s.Run("message wins over code", func() {
		err := &Error{Code: CodeNotFound, Message: "audit not found"}
		s.Equal("audit not found", err.Error())
	})

	s.Run("falls back to code", func() {
		err := &Error{Code: CodeUpstreamFailed}
		s.Equal("upstream_failed", err.Error())
	})
}

func (s *DomainErrorsSuite) TestIsMatchesByCode() {
	a := New(CodeNotFound, "company not found")
	b := New(CodeNotFound, "scenario not found")
	s.True(errors.Is(a, b))
	s.False(errors.Is(a, New(CodeConflict, "")))
	s.False(errors.Is(a, errors.New("not found")))
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("keeps the inner domain code", func() {
		inner := New(CodeValidation, "start date must be before end date")
		wrapped := Wrap(inner, CodeInternal, "update audit")
		s.True(HasCode(wrapped, CodeValidation))
		s.Equal("update audit", wrapped.Error())
	})

	s.Run("uses the given code for plain errors", func() {
		root := errors.New("connection reset")
		wrapped := Wrap(root, CodeUpstreamFailed, "generate impact description")
		s.True(HasCode(wrapped, CodeUpstreamFailed))
		s.ErrorIs(wrapped, root)
	})
}

func (s *DomainErrorsSuite) TestCodeOf() {
	s.Equal(CodeTimeout, CodeOf(fmt.Errorf("ctx: %w", New(CodeTimeout, "slow"))))
	s.Equal(CodeInternal, CodeOf(errors.New("boom")))
	s.Equal(CodeInternal, CodeOf(nil))
	s.False(HasCode(nil, CodeNotFound))
}

func (s *DomainErrorsSuite) TestLogValue() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Error("list audits failed", "error", Wrap(errors.New("connection refused"), CodeInternal, "failed to list audits"))

	out := buf.String()
	s.Contains(out, "error.code=internal_error")
	s.Contains(out, `error.message="failed to list audits"`)
	s.Contains(out, `error.cause="connection refused"`)
}
