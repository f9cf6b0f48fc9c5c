package cmd

import (
	"fmt"
	"slices"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/spf13/cobra"

	"github.com/s0up4200/clientele/sendgrid"
)

var (
	sendFrom     string
	sendTo       []string
	sendSubject  string
	sendText     string
	sendHTML     string
	sendTemplate string
	sendData     map[string]string
	sendSandbox  bool

	statsStart     string
	statsEnd       string
	statsAggregate string

	bouncesAll   bool
	bouncesStart string
	bouncesEnd   string
	bouncesEmail string
	bouncesLimit int

	templateGenerations []string
)

var suppressionColumns = columns(
	"EMAIL", "email",
	"CREATED", "created",
	"REASON", "reason",
	"STATUS", "status",
)

// sendgridCmd groups the SendGrid commands
var sendgridCmd = &cobra.Command{
	Use:   "sendgrid",
	Short: "SendGrid mail, stats, suppressions and templates",
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send an email",
	Long: `Send an email with a plain text and/or HTML body, or with a dynamic template:

  clientele sendgrid send --to ada@example.com --template-id d-123 --data name=Ada`,
	Args: cobra.NoArgs,
	RunE: runSend,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show global email statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var suppressionsCmd = &cobra.Command{
	Use:   "suppressions",
	Short: "Suppression lists",
}

var suppressionsLookupCmd = &cobra.Command{
	Use:   "lookup <email>",
	Short: "Check every suppression list for an address",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuppressionsLookup,
}

var bouncesCmd = &cobra.Command{
	Use:   "bounces",
	Short: "Bounced addresses",
}

var bouncesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bounced addresses",
	Args:  cobra.NoArgs,
	RunE:  runBouncesList,
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Transactional templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactional templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplatesList,
}

func init() {
	rootCmd.AddCommand(sendgridCmd)
	sendgridCmd.AddCommand(sendCmd, statsCmd, suppressionsCmd, bouncesCmd, templatesCmd)
	suppressionsCmd.AddCommand(suppressionsLookupCmd)
	bouncesCmd.AddCommand(bouncesListCmd)
	templatesCmd.AddCommand(templatesListCmd)

	sendCmd.Flags().StringVar(&sendFrom, "from", "", "sender address (default from sendgrid.from)")
	sendCmd.Flags().StringSliceVar(&sendTo, "to", nil, "recipient address (repeatable)")
	sendCmd.Flags().StringVar(&sendSubject, "subject", "", "subject line")
	sendCmd.Flags().StringVar(&sendText, "text", "", "plain text body")
	sendCmd.Flags().StringVar(&sendHTML, "html", "", "HTML body")
	sendCmd.Flags().StringVar(&sendTemplate, "template-id", "", "dynamic template ID")
	sendCmd.Flags().StringToStringVar(&sendData, "data", nil, "dynamic template data as key=value (repeatable)")
	sendCmd.Flags().BoolVar(&sendSandbox, "sandbox", false, "validate the request without delivering")
	_ = sendCmd.MarkFlagRequired("to")

	statsCmd.Flags().StringVar(&statsStart, "start", "", "first day, YYYY-MM-DD (default 7 days ago)")
	statsCmd.Flags().StringVar(&statsEnd, "end", "", "last day, YYYY-MM-DD (default today)")
	statsCmd.Flags().StringVar(&statsAggregate, "aggregated-by", "", "day, week or month")

	bouncesListCmd.Flags().BoolVar(&bouncesAll, "all", false, "follow pagination and list every bounce")
	bouncesListCmd.Flags().StringVar(&bouncesStart, "start", "", "only bounces after this day, YYYY-MM-DD")
	bouncesListCmd.Flags().StringVar(&bouncesEnd, "end", "", "only bounces before this day, YYYY-MM-DD")
	bouncesListCmd.Flags().StringVar(&bouncesEmail, "email", "", "only addresses starting with this prefix")
	bouncesListCmd.Flags().IntVar(&bouncesLimit, "limit", 100, "page size")

	templatesListCmd.Flags().StringSliceVar(&templateGenerations, "generations", []string{"legacy", "dynamic"}, "template generations to list")
}

func parseDay(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD", flag, value)
	}
	return t, nil
}

func runSend(cmd *cobra.Command, args []string) error {
	from := sendFrom
	if from == "" {
		from = cfg.SendGrid.From
	}
	if from == "" {
		return fmt.Errorf("no sender: use --from or set sendgrid.from")
	}
	if sendTemplate == "" && sendText == "" && sendHTML == "" {
		return fmt.Errorf("nothing to send: give --text, --html or --template-id")
	}

	recipients := make([]*sendgrid.EmailAddress, len(sendTo))
	for i, addr := range sendTo {
		recipients[i] = sendgrid.Email("", addr)
	}

	msg := &sendgrid.Message{
		From:       sendgrid.Email("", from),
		Subject:    sendSubject,
		TemplateID: sendTemplate,
	}
	p := sendgrid.NewPersonalization(recipients...)
	for k, v := range sendData {
		p.SetDynamicTemplateData(k, v)
	}
	msg.AddPersonalizations(p)
	if sendText != "" {
		msg.AddContent(sendgrid.Content{Type: "text/plain", Value: sendText})
	}
	if sendHTML != "" {
		msg.AddContent(sendgrid.Content{Type: "text/html", Value: sendHTML})
	}
	if sendSandbox {
		msg.MailSettings = &sendgrid.MailSettings{SandboxMode: &sendgrid.Setting{Enable: true}}
	}

	client, err := newSendGridClient()
	if err != nil {
		return err
	}

	id, err := client.Send(cmd.Context(), msg)
	if err != nil {
		return err
	}
	logger.Info().Str("message_id", id).Strs("to", sendTo).Bool("sandbox", sendSandbox).Msg("Message queued")
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	start, err := parseDay("start", statsStart)
	if err != nil {
		return err
	}
	if start.IsZero() {
		start = time.Now().UTC().AddDate(0, 0, -7)
	}
	end, err := parseDay("end", statsEnd)
	if err != nil {
		return err
	}
	aggregate := sendgrid.AggregatedBy(statsAggregate)
	if aggregate != "" && !aggregate.Known() {
		return fmt.Errorf("invalid --aggregated-by %q: expected day, week or month", statsAggregate)
	}

	client, err := newSendGridClient()
	if err != nil {
		return err
	}

	opts := &sendgrid.StatsOptions{
		StartDate:    openapi_types.Date{Time: start},
		AggregatedBy: aggregate,
	}
	if !end.IsZero() {
		opts.EndDate = openapi_types.Date{Time: end}
	}

	stats, err := client.GlobalStats(cmd.Context(), opts)
	if err != nil {
		return err
	}
	return renderList(cmd, stats, columns(
		"DATE", "date",
		"REQUESTS", "stats.0.metrics.requests",
		"DELIVERED", "stats.0.metrics.delivered",
		"OPENS", "stats.0.metrics.unique_opens",
		"CLICKS", "stats.0.metrics.unique_clicks",
		"BOUNCES", "stats.0.metrics.bounces",
		"SPAM", "stats.0.metrics.spam_reports",
	))
}

// suppressionEntry is one list hit, flattened for output
type suppressionEntry struct {
	List sendgrid.SuppressionList `json:"list"`
	sendgrid.Suppression
}

func runSuppressionsLookup(cmd *cobra.Command, args []string) error {
	client, err := newSendGridClient()
	if err != nil {
		return err
	}

	lookup, err := client.LookupSuppressions(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !lookup.Suppressed() {
		logger.Info().Str("email", lookup.Email).Msg("Address is not suppressed")
	}

	lists := make([]sendgrid.SuppressionList, 0, len(lookup.Lists))
	for list := range lookup.Lists {
		lists = append(lists, list)
	}
	slices.Sort(lists)

	var entries []suppressionEntry
	for _, list := range lists {
		for _, s := range lookup.Lists[list] {
			entries = append(entries, suppressionEntry{List: list, Suppression: s})
		}
	}

	return renderList(cmd, entries, slices.Concat(columns("LIST", "list"), suppressionColumns))
}

func runBouncesList(cmd *cobra.Command, args []string) error {
	start, err := parseDay("start", bouncesStart)
	if err != nil {
		return err
	}
	end, err := parseDay("end", bouncesEnd)
	if err != nil {
		return err
	}

	client, err := newSendGridClient()
	if err != nil {
		return err
	}

	opts := &sendgrid.SuppressionListOptions{
		ListOptions: sendgrid.ListOptions{Limit: bouncesLimit},
		StartTime:   start,
		EndTime:     end,
		Email:       bouncesEmail,
	}

	var bounces []sendgrid.Suppression
	if bouncesAll {
		bounces, err = client.ListAllBounces(cmd.Context(), opts)
	} else {
		bounces, err = client.ListBounces(cmd.Context(), opts)
	}
	if err != nil {
		return err
	}
	return renderList(cmd, bounces, suppressionColumns)
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	generations := make([]sendgrid.TemplateGeneration, 0, len(templateGenerations))
	for _, g := range templateGenerations {
		gen := sendgrid.TemplateGeneration(g)
		if !gen.Known() {
			return fmt.Errorf("invalid generation %q: expected legacy or dynamic", g)
		}
		generations = append(generations, gen)
	}

	client, err := newSendGridClient()
	if err != nil {
		return err
	}

	templates, err := client.ListAllTemplates(cmd.Context(), generations...)
	if err != nil {
		return err
	}
	return renderList(cmd, templates, columns(
		"ID", "id",
		"NAME", "name",
		"GENERATION", "generation",
		"UPDATED", "updated_at",
	))
}
