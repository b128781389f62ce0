package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"09171234567", "+639171234567", "639171234567", "0917-123-4567", "0917 123 4567"}
	invalid := []string{"0817123456", "123456789", "091712345678", "abc09171234", "0917123456a"}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestIsValidEmployeeID(t *testing.T) {
	valid := []string{"EMP001", "EMP999", "EMP1000"}
	invalid := []string{"EMP01", "emp001", "EMPABC", "001", ""}
	for _, id := range valid {
		if !IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = true, want false", id)
		}
	}
}

func TestParseAmount(t *testing.T) {
	valid := map[string]string{"450": "450", "450.50": "450.5", " 12.3 ": "12.3", "0": "0"}
	for in, want := range valid {
		got, ok := ParseAmount(in)
		if !ok {
			t.Errorf("ParseAmount(%q) rejected, want %s", in, want)
			continue
		}
		if got.String() != want {
			t.Errorf("ParseAmount(%q) = %s, want %s", in, got.String(), want)
		}
	}
	for _, in := range []string{"", "abc", "-5", "1,000", "1e3", "450.505", "+12", ".5", "12."} {
		if _, ok := ParseAmount(in); ok {
			t.Errorf("ParseAmount(%q) accepted, want rejection", in)
		}
	}
}

func TestFitsNumeric(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"450.50", true},
		{"99999999.99", true},
		{"100000000", false},
		{"-99999999.99", true},
		{"12.345", false},
	}
	for _, c := range cases {
		if got := FitsNumeric(decimal.RequireFromString(c.in), 10, 2); got != c.want {
			t.Errorf("FitsNumeric(%s, 10, 2) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; phone: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "phone": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestValidationErrors_Err(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Errorf("empty ValidationErrors.Err() = %v, want nil", errs.Err())
	}
	errs.Add("name", "name is required")
	if errs.Err() == nil {
		t.Errorf("ValidationErrors.Err() = nil after Add")
	}
}

type structSample struct {
	Title    string `json:"title" validate:"required,max=5"`
	Category string `json:"category" validate:"omitempty,oneof=Payroll General"`
}

func TestStruct(t *testing.T) {
	if err := Struct(structSample{Title: "ok"}); err != nil {
		t.Fatalf("Struct(valid) = %v, want nil", err)
	}

	err := Struct(structSample{Title: "", Category: "Other"})
	errs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("Struct(invalid) returned %T, want ValidationErrors", err)
	}
	m := errs.ToMap()
	if m["title"] != "title is required" {
		t.Errorf("title message = %q", m["title"])
	}
	if m["category"] != "category must be one of: Payroll General" {
		t.Errorf("category message = %q", m["category"])
	}
}
