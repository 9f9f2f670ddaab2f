package commands

import (
	"github.com/PayRam/go-jobly/request"
	"github.com/PayRam/go-jobly/utils"
	"github.com/spf13/cobra"
)

// NewJobsCommand creates the jobs listing command.
func NewJobsCommand() *cobra.Command {
	var (
		title     string
		minSalary int
		hasEquity bool
		company   string
		limit     int
		offset    int
	)

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List jobs matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req request.GetJobsRequest
			flags := cmd.Flags()
			if flags.Changed("title") {
				req.Title = utils.StringPtr(title)
			}
			if flags.Changed("min-salary") {
				req.MinSalary = utils.Ptr(minSalary)
			}
			if flags.Changed("has-equity") {
				req.HasEquity = utils.Ptr(hasEquity)
			}
			if flags.Changed("company") {
				req.CompanyHandle = utils.StringPtr(company)
			}
			req.PaginationConditions = pagination(cmd, limit, offset)

			svc, err := openService()
			if err != nil {
				return err
			}
			jobs, err := svc.Jobs.GetJobs(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), jobs)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Exact job title")
	cmd.Flags().IntVar(&minSalary, "min-salary", 0, "Minimum salary")
	cmd.Flags().BoolVar(&hasEquity, "has-equity", false, "Only jobs offering equity")
	cmd.Flags().StringVar(&company, "company", "", "Company handle")
	addPaginationFlags(cmd, &limit, &offset)

	return cmd
}
