package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/areacalc/internal/log"
	"github.com/zjrosen/areacalc/internal/presentation"
	"github.com/zjrosen/areacalc/internal/users"
)

var (
	usersOutput     string
	usersPrivileges []string
	usersSections   []string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Show the role-based user records demo",
	Long: `Print sample user, admin, guest and moderator records with their
login, logout and access details.

Examples:
  # Grant the demo admins an extra privilege
  areacalc users --privilege AUDIT

  # Give the demo moderators another section, as YAML
  areacalc users --section Wiki -o yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !presentation.ValidFormat(usersOutput) {
			return fmt.Errorf("unsupported output format %q (use text, json or yaml)", usersOutput)
		}
		cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		demo := users.Demo()
		if err := extendDemo(demo, usersPrivileges, usersSections); err != nil {
			return err
		}
		log.Debug(log.CatUsers, "rendering demo", "users", len(demo), "format", usersOutput)

		formatter := presentation.NewFormatter(cmd.OutOrStdout())
		return formatter.FormatUsers(presentation.FromDomainUsers(demo), users.PolyAdmin(), usersOutput)
	},
}

// extendDemo grants privileges to every admin and sections to every
// moderator in list.
func extendDemo(list []users.User, privileges, sections []string) error {
	for i := range list {
		u := &list[i]
		switch u.Role {
		case users.RoleAdmin:
			for _, p := range privileges {
				if err := u.AddPrivilege(p); err != nil {
					return err
				}
			}
		case users.RoleModerator:
			for _, s := range sections {
				if err := u.AddSection(s); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func init() {
	usersCmd.Flags().StringVarP(&usersOutput, "output", "o", presentation.FormatText, "Output format: text, json or yaml")
	usersCmd.Flags().StringSliceVar(&usersPrivileges, "privilege", nil, "extra privilege granted to the demo admins (repeatable)")
	usersCmd.Flags().StringSliceVar(&usersSections, "section", nil, "extra section given to the demo moderators (repeatable)")
	rootCmd.AddCommand(usersCmd)
}
