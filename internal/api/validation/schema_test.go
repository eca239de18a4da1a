package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemas(t *testing.T) {
	tests := []struct {
		name   string
		schema *Schema
		body   string
		valid  bool
	}{
		{"content ok", PostContent, `{"content":"hello"}`, true},
		{"content missing", PostContent, `{}`, false},
		{"content wrong type", PostContent, `{"content":42}`, false},
		{"content empty", PostContent, `{"content":""}`, false},
		{"like true", Reaction, `{"like":true}`, true},
		{"like false", Reaction, `{"like":false}`, true},
		{"like as string", Reaction, `{"like":"true"}`, false},
		{"like missing", Reaction, `{}`, false},
		{"signup ok", SignUp, `{"name":"Ana","email":"ana@mail.com","password":"abc12345"}`, true},
		{"signup admin", SignUp, `{"name":"Ana","email":"ana@mail.com","password":"abc12345","role":"ADMIN"}`, true},
		{"signup bad role", SignUp, `{"name":"Ana","email":"ana@mail.com","password":"abc12345","role":"ROOT"}`, false},
		{"signup bad email", SignUp, `{"name":"Ana","email":"not-an-email","password":"abc12345"}`, false},
		{"password too short", SignUp, `{"name":"Ana","email":"ana@mail.com","password":"ab1"}`, false},
		{"password too long", SignUp, `{"name":"Ana","email":"ana@mail.com","password":"abcdefgh12345"}`, false},
		{"password no digit", SignUp, `{"name":"Ana","email":"ana@mail.com","password":"abcdefgh"}`, false},
		{"password no letter", SignUp, `{"name":"Ana","email":"ana@mail.com","password":"12345678"}`, false},
		{"password symbol", SignUp, `{"name":"Ana","email":"ana@mail.com","password":"abc1234!"}`, false},
		{"login ok", Login, `{"email":"ana@mail.com","password":"x"}`, true},
		{"login missing password", Login, `{"email":"ana@mail.com"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate([]byte(tt.body))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var schemaErr *SchemaError
			assert.True(t, errors.As(err, &schemaErr), "expected schema error, got %v", err)
			assert.NotEmpty(t, schemaErr.Violations)
		})
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	err := PostContent.Validate([]byte(`{"content":`))
	assert.ErrorIs(t, err, ErrInvalidBody)
}
