package validate

import "testing"

func TestLoginInputValidate(t *testing.T) {
	tests := []struct {
		name      string
		in        LoginInput
		wantField string
	}{
		{"empty username", LoginInput{Username: "", Password: "secret1"}, "username"},
		{"whitespace username", LoginInput{Username: "   ", Password: "secret1"}, "username"},
		{"empty password", LoginInput{Username: "alice", Password: ""}, "password"},
		{"short password", LoginInput{Username: "alice", Password: "abc"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.in.Validate()
			if errs.Valid() {
				t.Fatal("expected validation errors")
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("missing error for field %q: %v", tt.wantField, errs)
			}
		})
	}

	if errs := (LoginInput{Username: "alice", Password: "secret1"}).Validate(); !errs.Valid() {
		t.Errorf("valid input rejected: %v", errs)
	}
}

func TestRegisterInputValidate(t *testing.T) {
	valid := RegisterInput{
		Email:           "alice@example.com",
		Username:        "alice_99",
		Password:        "Passw0rd",
		ConfirmPassword: "Passw0rd",
		FirstName:       "Alice",
		LastName:        "Smith",
	}
	if errs := valid.Validate(); !errs.Valid() {
		t.Fatalf("valid input rejected: %v", errs)
	}

	tests := []struct {
		name      string
		mutate    func(*RegisterInput)
		wantField string
		wantMsg   string
	}{
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }, "email", "Please enter a valid email address"},
		{"short username", func(in *RegisterInput) { in.Username = "ab" }, "username", "Username must be at least 3 characters"},
		{"username with dash", func(in *RegisterInput) { in.Username = "alice-99" }, "username", "Username can only contain letters, numbers, and underscores"},
		{"short password", func(in *RegisterInput) { in.Password, in.ConfirmPassword = "Ab1", "Ab1" }, "password", "Password must be at least 8 characters"},
		{"no uppercase", func(in *RegisterInput) { in.Password, in.ConfirmPassword = "passw0rdd", "passw0rdd" }, "password", "Password must contain at least one uppercase letter, one lowercase letter, and one number"},
		{"no digit", func(in *RegisterInput) { in.Password, in.ConfirmPassword = "Passwordd", "Passwordd" }, "password", "Password must contain at least one uppercase letter, one lowercase letter, and one number"},
		{"mismatched confirm", func(in *RegisterInput) { in.ConfirmPassword = "Different1" }, "confirm_password", "Passwords do not match"},
		{"empty first name", func(in *RegisterInput) { in.FirstName = " " }, "first_name", "First name is required"},
		{"empty last name", func(in *RegisterInput) { in.LastName = "" }, "last_name", "Last name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			errs := in.Validate()
			if msg, ok := errs[tt.wantField]; !ok || msg != tt.wantMsg {
				t.Errorf("errs[%q] = %q, want %q", tt.wantField, msg, tt.wantMsg)
			}
		})
	}
}

func TestUploadFile(t *testing.T) {
	if msg := UploadFile(1024, "image/jpeg"); msg != "" {
		t.Errorf("valid file rejected: %q", msg)
	}
	if msg := UploadFile(MaxUploadSize+1, "image/png"); msg == "" {
		t.Error("oversized file accepted")
	}
	if msg := UploadFile(1024, "application/pdf"); msg == "" {
		t.Error("pdf accepted")
	}
}
