package auth

import (
	"fmt"

	"github.com/isaacjstriker/blockfall/internal/database"
	"github.com/isaacjstriker/blockfall/ui"
)

// CLIAuth handles authentication through the CLI
type CLIAuth struct {
	db      *database.DB
	session *SessionManager
}

// NewCLIAuth creates a new CLI authentication handler
func NewCLIAuth(db *database.DB) *CLIAuth {
	return &CLIAuth{
		db:      db,
		session: NewSessionManager(),
	}
}

// GetSession returns the current session manager
func (auth *CLIAuth) GetSession() *SessionManager {
	return auth.session
}

// ShowAuthMenu displays the account menu
func (auth *CLIAuth) ShowAuthMenu() {
	for {
		var menuItems []ui.MenuItem

		if auth.session.IsLoggedIn() {
			menuItems = []ui.MenuItem{
				{Label: fmt.Sprintf("Currently: %s", auth.session.GetUserInfo()), Value: "info"},
				{Label: "Logout", Value: "logout"},
				{Label: "Back to Main Menu", Value: "back"},
			}
		} else {
			menuItems = []ui.MenuItem{
				{Label: "Login", Value: "login"},
				{Label: "Register New Account", Value: "register"},
				{Label: "Continue as Guest", Value: "guest"},
				{Label: "Back to Main Menu", Value: "back"},
			}
		}

		menu := ui.NewMenu("Account", menuItems)
		choice := menu.Show()

		switch choice {
		case "login":
			auth.handleLogin()
		case "register":
			auth.handleRegister()
		case "guest":
			fmt.Println("\nContinuing as guest. Your scores won't be saved!")
			pause()
			return
		case "logout":
			auth.handleLogout()
		case "info":
			fmt.Printf("\n%s\n", auth.session.GetUserInfo())
			pause()
		case "back", "exit":
			return
		}
	}
}

func pause() {
	fmt.Println("Press Enter to continue...")
	fmt.Scanln()
}

// handleLogin handles user login
func (auth *CLIAuth) handleLogin() {
	fmt.Println("\nLogin to Your Account")
	fmt.Println("=====================")

	username, err := ReadInput("Username: ")
	if err != nil {
		fmt.Printf("Error reading username: %v\n", err)
		return
	}

	password, err := ReadPassword("Password: ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}

	user, passwordHash, err := auth.db.GetUserByUsername(username)
	if err != nil || !CheckPassword(password, passwordHash) {
		fmt.Println("Invalid username or password")
		pause()
		return
	}

	if err := auth.session.SaveSession(user.ID, user.Username, user.Email); err != nil {
		fmt.Printf("Error saving session: %v\n", err)
		return
	}

	fmt.Printf("Welcome back, %s!\n", user.Username)
	pause()
}

// handleRegister handles user registration
func (auth *CLIAuth) handleRegister() {
	fmt.Println("\nCreate New Account")
	fmt.Println("==================")

	username, err := ReadInput("Username (3-50 characters): ")
	if err != nil {
		fmt.Printf("Error reading username: %v\n", err)
		return
	}
	if err := ValidateUsername(username); err != nil {
		fmt.Printf("%v\n", err)
		pause()
		return
	}

	email, err := ReadInput("Email: ")
	if err != nil {
		fmt.Printf("Error reading email: %v\n", err)
		return
	}
	if err := ValidateEmail(email); err != nil {
		fmt.Printf("%v\n", err)
		pause()
		return
	}

	password, err := ReadPassword("Password (8+ characters): ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}
	if err := ValidatePassword(password); err != nil {
		fmt.Printf("%v\n", err)
		pause()
		return
	}

	confirmPassword, err := ReadPassword("Confirm Password: ")
	if err != nil {
		fmt.Printf("Error reading confirmation: %v\n", err)
		return
	}
	if password != confirmPassword {
		fmt.Println("Passwords do not match")
		pause()
		return
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		return
	}

	user, err := auth.db.CreateUser(username, email, passwordHash)
	if err != nil {
		fmt.Printf("Failed to create account: %v\n", err)
		fmt.Println("(Username or email might already be taken)")
		pause()
		return
	}

	if err := auth.session.SaveSession(user.ID, user.Username, user.Email); err != nil {
		fmt.Printf("Error saving session: %v\n", err)
		return
	}

	fmt.Printf("Account created successfully! Welcome, %s!\n", user.Username)
	pause()
}

// handleLogout handles user logout
func (auth *CLIAuth) handleLogout() {
	var username string
	if session := auth.session.GetCurrentSession(); session != nil {
		username = session.Username
	}

	if err := auth.session.ClearSession(); err != nil {
		fmt.Printf("Error clearing session: %v\n", err)
		return
	}

	if username != "" {
		fmt.Printf("Goodbye, %s! You have been logged out.\n", username)
	} else {
		fmt.Println("You have been logged out.")
	}
	pause()
}
