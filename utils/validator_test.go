package utils

import "testing"

type registerForm struct {
	Name     string `validate:"required,nameok"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,pwdmin"`
	Confirm  string `validate:"eqfield=Password"`
}

func TestValidateStruct_Valid(t *testing.T) {
	f := registerForm{Name: "Ines Duarte", Email: "ines@example.com", Password: "hunter2hunter2", Confirm: "hunter2hunter2"}
	if err := ValidateStruct(&f); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestValidateStruct_Errors(t *testing.T) {
	cases := []struct {
		name string
		form registerForm
	}{
		{"missing name", registerForm{Email: "a@b.co", Password: "longenough", Confirm: "longenough"}},
		{"bad email", registerForm{Name: "Ines", Email: "not-an-email", Password: "longenough", Confirm: "longenough"}},
		{"short password", registerForm{Name: "Ines", Email: "a@b.co", Password: "short", Confirm: "short"}},
		{"mismatched confirm", registerForm{Name: "Ines", Email: "a@b.co", Password: "longenough", Confirm: "different1"}},
		{"invalid name chars", registerForm{Name: "<script>", Email: "a@b.co", Password: "longenough", Confirm: "longenough"}},
	}
	for _, c := range cases {
		if err := ValidateStruct(&c.form); err == nil {
			t.Errorf("%s: expected error, got nil", c.name)
		}
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	if err := ValidateStruct("nope"); err == nil {
		t.Fatal("expected error for non-struct input")
	}
}
