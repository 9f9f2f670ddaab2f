package commands

import (
	"github.com/PayRam/go-jobly/request"
	"github.com/PayRam/go-jobly/utils"
	"github.com/spf13/cobra"
)

// NewCompaniesCommand creates the companies listing command.
func NewCompaniesCommand() *cobra.Command {
	var (
		nameLike     string
		minEmployees int
		maxEmployees int
		limit        int
		offset       int
	)

	cmd := &cobra.Command{
		Use:   "companies",
		Short: "List companies matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req request.GetCompaniesRequest
			flags := cmd.Flags()
			if flags.Changed("name-like") {
				req.NameLike = utils.StringPtr(nameLike)
			}
			if flags.Changed("min-employees") {
				req.MinEmployees = utils.Ptr(minEmployees)
			}
			if flags.Changed("max-employees") {
				req.MaxEmployees = utils.Ptr(maxEmployees)
			}
			req.PaginationConditions = pagination(cmd, limit, offset)

			svc, err := openService()
			if err != nil {
				return err
			}
			companies, err := svc.Companies.GetCompanies(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), companies)
		},
	}

	cmd.Flags().StringVar(&nameLike, "name-like", "", "Case-insensitive partial match on name")
	cmd.Flags().IntVar(&minEmployees, "min-employees", 0, "Minimum number of employees")
	cmd.Flags().IntVar(&maxEmployees, "max-employees", 0, "Maximum number of employees")
	addPaginationFlags(cmd, &limit, &offset)

	return cmd
}

func addPaginationFlags(cmd *cobra.Command, limit, offset *int) {
	cmd.Flags().IntVar(limit, "limit", 0, "Maximum number of rows to return")
	cmd.Flags().IntVar(offset, "offset", 0, "Number of rows to skip (requires --limit)")
}

func pagination(cmd *cobra.Command, limit, offset int) request.PaginationConditions {
	var cond request.PaginationConditions
	if cmd.Flags().Changed("limit") {
		cond.Limit = utils.Ptr(limit)
	}
	if cmd.Flags().Changed("offset") {
		cond.Offset = utils.Ptr(offset)
	}
	return cond
}
