package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"ankadash/internal/api"
	"ankadash/internal/config"
)

var (
	flagLoginEmail    string
	flagLoginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the backend and store the session token",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := config.OpenSession().Clear(); err != nil {
			return err
		}
		fmt.Println("Sessão encerrada")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <name>",
	Short: "Create an advisor account on the backend",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegister,
}

func init() {
	loginCmd.Flags().StringVar(&flagLoginEmail, "email", "", "Login email (prompted when omitted)")
	loginCmd.Flags().StringVar(&flagLoginPassword, "password", "", "Password (prompted when omitted)")
	registerCmd.Flags().StringVar(&flagLoginEmail, "email", "", "Account email (prompted when omitted)")
	registerCmd.Flags().StringVar(&flagLoginPassword, "password", "", "Password (prompted when omitted)")

	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd)
}

// promptCredentials fills in email and password via a form when the
// flags were not given.
func promptCredentials() error {
	var fields []huh.Field
	if flagLoginEmail == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(&flagLoginEmail))
	}
	if flagLoginPassword == "" {
		fields = append(fields, huh.NewInput().
			Title("Senha").
			EchoMode(huh.EchoModePassword).
			Value(&flagLoginPassword))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if err := promptCredentials(); err != nil {
		return err
	}
	if flagLoginEmail == "" || flagLoginPassword == "" {
		return fmt.Errorf("email and password are required")
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}
	token, err := client.Login(cmd.Context(), flagLoginEmail, flagLoginPassword)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if err := config.OpenSession().Save(token); err != nil {
		return err
	}
	fmt.Printf("Sessão iniciada como %s\n", flagLoginEmail)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	if err := promptCredentials(); err != nil {
		return err
	}
	if flagLoginEmail == "" || flagLoginPassword == "" {
		return fmt.Errorf("email and password are required")
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}
	err = client.Register(cmd.Context(), api.RegisterInput{
		Name:     args[0],
		Email:    flagLoginEmail,
		Password: flagLoginPassword,
		IsActive: true,
	})
	if err != nil {
		return fmt.Errorf("register failed: %w", err)
	}
	fmt.Printf("Conta criada para %s; faça login com `ankadash login`\n", flagLoginEmail)
	return nil
}
