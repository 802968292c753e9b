package rules

import "unicode/utf8"

type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	NameTaken       bool
	EmailTaken      bool
}

func between(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}

func (p *Patterns) Signup(in SignupInput) Result {
	switch {
	case in.Name == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "":
		return reject("Fill up all empty fields")
	case !between(in.Name, 5, 20):
		return reject("Username should be 5-20 characters")
	case !between(in.Email, 15, 40):
		return reject("Email should be 15-40 characters")
	case !between(in.Password, 8, 20):
		return reject("Password should be 8-20 characters")
	case in.Password != in.ConfirmPassword:
		return reject("Passwords do not match")
	case !p.ValidName(in.Name):
		return reject("Invalid Username")
	case !p.ValidEmail(in.Email):
		return reject("Invalid Email")
	case !p.ValidPassword(in.Password):
		return reject("Invalid Password")
	case in.NameTaken:
		return reject("Username already exist")
	case in.EmailTaken:
		return reject("Email already exist")
	}
	return accept()
}

// Login checks credentials. passwordMatches is only called once the user is
// known to exist.
func Login(email, password string, found bool, passwordMatches func() bool) Result {
	switch {
	case email == "" || password == "":
		return reject("Fill up all empty fields")
	case !between(email, 15, 40) || !between(password, 8, 20):
		return reject("Fill up fields with specified length")
	case !found:
		return reject("User not found")
	case !passwordMatches():
		return reject("Wrong password")
	}
	return accept()
}

func (p *Patterns) ResetPassword(storedCode, code, password, confirm string) Result {
	switch {
	case code == "" || code != storedCode:
		return reject("Invalid Code")
	case !p.ValidPassword(password):
		return reject("Invalid Password")
	case password != confirm:
		return reject("Passwords do not match")
	}
	return accept()
}

func (p *Patterns) ChangePassword(current, next, confirm string, currentMatches func(string) bool) Result {
	switch {
	case current == "" || next == "" || confirm == "":
		return reject("Fill up empty fields.")
	case !currentMatches(current):
		return reject("Current password do not match.")
	case !p.ValidPassword(next):
		return reject("Invalid New Password.")
	case next != confirm:
		return reject("New password do not match.")
	}
	return accept()
}

func (p *Patterns) UserName(name string) Result {
	switch {
	case !between(name, 5, 20):
		return reject("Username should be 5-20 characters")
	case !p.ValidName(name):
		return reject("Invalid Username")
	}
	return accept()
}

func UserRole(role string) Result {
	if !between(role, 5, 50) {
		return reject("Role should be 5-50 characters")
	}
	return accept()
}
