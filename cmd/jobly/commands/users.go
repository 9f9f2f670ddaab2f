package commands

import (
	"github.com/PayRam/go-jobly/request"
	"github.com/PayRam/go-jobly/utils"
	"github.com/spf13/cobra"
)

// NewUsersCommand creates the users listing command.
func NewUsersCommand() *cobra.Command {
	var (
		nameLike string
		email    string
		admin    bool
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req request.GetUsersRequest
			flags := cmd.Flags()
			if flags.Changed("name-like") {
				req.NameLike = utils.StringPtr(nameLike)
			}
			if flags.Changed("email") {
				req.Email = utils.StringPtr(email)
			}
			if flags.Changed("admin") {
				req.IsAdmin = utils.Ptr(admin)
			}
			req.PaginationConditions = pagination(cmd, limit, offset)

			svc, err := openService()
			if err != nil {
				return err
			}
			users, err := svc.Users.GetUsers(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), users)
		},
	}

	cmd.Flags().StringVar(&nameLike, "name-like", "", "Partial match on first or last name")
	cmd.Flags().StringVar(&email, "email", "", "Exact email")
	cmd.Flags().BoolVar(&admin, "admin", false, "Filter on admin flag")
	addPaginationFlags(cmd, &limit, &offset)

	return cmd
}
