// ABOUTME: Auth CLI commands
// ABOUTME: Login, signup, whoami, and logout against the backend auth API
package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"syscall"

	"golang.org/x/term"

	"calldeck/api"
)

// LoginCommand signs in and stores the session.
func LoginCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("auth login", flag.ExitOnError)
	email := fs.String("email", "", "Account email (required)")
	password := fs.String("password", "", "Password (prompted if omitted)")
	_ = fs.Parse(args)

	if *email == "" {
		return fmt.Errorf("--email is required")
	}

	pw := *password
	if pw == "" {
		var err error
		pw, err = promptPassword("Password: ")
		if err != nil {
			return err
		}
	}

	user, err := client.Login(context.Background(), *email, pw)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Printf("✓ Signed in as %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
	if user.Company != nil {
		fmt.Printf("  Company: %s\n", user.Company.Name)
	}
	return nil
}

// SignupCommand registers a new account and stores the session.
func SignupCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("auth signup", flag.ExitOnError)
	firstName := fs.String("first-name", "", "First name (required)")
	lastName := fs.String("last-name", "", "Last name")
	email := fs.String("email", "", "Account email (required)")
	password := fs.String("password", "", "Password (prompted if omitted)")
	company := fs.String("company", "", "Company name")
	phone := fs.String("phone", "", "Phone number")
	_ = fs.Parse(args)

	if *firstName == "" || *email == "" {
		return fmt.Errorf("--first-name and --email are required")
	}

	pw := *password
	if pw == "" {
		var err error
		pw, err = promptPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if pw != confirm {
			return fmt.Errorf("passwords do not match")
		}
	}

	user, err := client.Signup(context.Background(), &api.SignupRequest{
		FirstName:   *firstName,
		LastName:    *lastName,
		Email:       *email,
		Password:    pw,
		CompanyName: *company,
		Phone:       *phone,
	})
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	fmt.Printf("✓ Account created for %s %s\n", user.FirstName, user.LastName)
	fmt.Println("  Next: run `calldeck onboarding select` to classify your business")
	return nil
}

// WhoamiCommand prints the signed-in user from the backend profile endpoint.
func WhoamiCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("auth whoami", flag.ExitOnError)
	_ = fs.Parse(args)

	user, err := client.Profile(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
	if user.Company != nil {
		fmt.Printf("Company: %s", user.Company.Name)
		if user.Company.Phone != "" {
			fmt.Printf(" (%s)", user.Company.Phone)
		}
		fmt.Println()
	}
	return nil
}

// LogoutCommand clears the stored session.
func LogoutCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("auth logout", flag.ExitOnError)
	_ = fs.Parse(args)

	if err := client.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	fmt.Println("✓ Signed out")
	return nil
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	pw := strings.TrimSpace(string(raw))
	if pw == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return pw, nil
}

// friendlyError prefixes 403s so they read as a permission problem rather
// than a generic failure. Other errors pass through verbatim.
func friendlyError(err error) error {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*api.APIError); ok && apiErr.Forbidden() {
		return fmt.Errorf("permission denied: %s", apiErr.Error())
	}
	return err
}
