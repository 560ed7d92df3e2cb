package cmd

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"tripdesk/internal/api"
	"tripdesk/internal/cli/output"

	"github.com/spf13/cobra"
)

var (
	listPage    int
	listPerPage int
	listSort    string
	listDesc    bool
	listFormat  string
)

// listCmd groups the scriptable resource listings
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List platform records without the TUI",
	Long: `List one page of a platform collection on stdout. Useful from
scripts; pair with --output json or --output quiet for machine
consumption.`,
}

// listQuery builds the shared page/sort query from the flags
func listQuery() api.ListQuery {
	q := api.ListQuery{Page: listPage, PerPage: listPerPage}
	if listSort != "" {
		q.Filters = url.Values{}
		q.Filters.Set("sort", listSort)
		if listDesc {
			q.Filters.Set("direction", "desc")
		} else {
			q.Filters.Set("direction", "asc")
		}
	}
	return q
}

// printPageFooter notes the pager position on human output
func printPageFooter[T any](w *output.Writer, page *api.Page[T]) {
	if w.Format() != output.FormatTable {
		return
	}
	if page.HasTotals() {
		w.Printf("page %d of %d (%d to %d of %d)\n",
			page.CurrentPage, page.LastPage, page.From, page.To, page.Total)
		return
	}
	w.Printf("page %d of %d\n", page.CurrentPage, page.LastPage)
}

var listCitiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List cities",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		page, err := client.ListCities(cmd.Context(), listQuery(), api.CityFilters{})
		if err != nil {
			return err
		}
		table := output.NewTable("ID", "Name")
		ids := make([]int, 0, len(page.Data))
		for _, c := range page.Data {
			table.AddRow(strconv.Itoa(c.ID), c.Name)
			ids = append(ids, c.ID)
		}
		w := output.NewWriter(output.ParseFormat(listFormat))
		if err := w.WriteListing(output.Listing{Table: table, Raw: page.Data, IDs: ids}); err != nil {
			return err
		}
		printPageFooter(w, page)
		return nil
	},
}

var listAirportsCmd = &cobra.Command{
	Use:   "airports",
	Short: "List airports",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		page, err := client.ListAirports(cmd.Context(), listQuery(), api.AirportFilters{})
		if err != nil {
			return err
		}
		table := output.NewTable("ID", "Name", "Code", "City")
		ids := make([]int, 0, len(page.Data))
		for _, a := range page.Data {
			city := ""
			if a.City != nil {
				city = a.City.Name
			}
			table.AddRow(strconv.Itoa(a.ID), a.Name, a.Code, city)
			ids = append(ids, a.ID)
		}
		w := output.NewWriter(output.ParseFormat(listFormat))
		if err := w.WriteListing(output.Listing{Table: table, Raw: page.Data, IDs: ids}); err != nil {
			return err
		}
		printPageFooter(w, page)
		return nil
	},
}

var listFlightsCmd = &cobra.Command{
	Use:   "flights",
	Short: "List flights",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		page, err := client.ListFlights(cmd.Context(), listQuery(), api.FlightFilters{})
		if err != nil {
			return err
		}
		table := output.NewTable("ID", "Number", "Departs", "Arrives", "Price", "Seats")
		ids := make([]int, 0, len(page.Data))
		for _, f := range page.Data {
			table.AddRow(
				strconv.Itoa(f.ID),
				f.Number,
				f.DepartureTime,
				f.ArrivalTime,
				fmt.Sprintf("%.2f", f.Price),
				fmt.Sprintf("%d/%d", f.SeatsAvailable, f.SeatsTotal),
			)
			ids = append(ids, f.ID)
		}
		w := output.NewWriter(output.ParseFormat(listFormat))
		if err := w.WriteListing(output.Listing{Table: table, Raw: page.Data, IDs: ids}); err != nil {
			return err
		}
		printPageFooter(w, page)
		return nil
	},
}

var listHotelsCmd = &cobra.Command{
	Use:   "hotels",
	Short: "List hotels",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		page, err := client.ListHotels(cmd.Context(), listQuery(), api.HotelFilters{})
		if err != nil {
			return err
		}
		table := output.NewTable("ID", "Name", "City", "Stars", "Address")
		ids := make([]int, 0, len(page.Data))
		for _, h := range page.Data {
			city := ""
			if h.City != nil {
				city = h.City.Name
			}
			table.AddRow(strconv.Itoa(h.ID), h.Name, city, strconv.Itoa(h.Stars), h.Address)
			ids = append(ids, h.ID)
		}
		w := output.NewWriter(output.ParseFormat(listFormat))
		if err := w.WriteListing(output.Listing{Table: table, Raw: page.Data, IDs: ids}); err != nil {
			return err
		}
		printPageFooter(w, page)
		return nil
	},
}

var listRoomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List rooms",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		page, err := client.ListRooms(cmd.Context(), listQuery(), api.RoomFilters{})
		if err != nil {
			return err
		}
		table := output.NewTable("ID", "Hotel", "Number", "Type", "Capacity", "Price")
		ids := make([]int, 0, len(page.Data))
		for _, r := range page.Data {
			hotel := strconv.Itoa(r.HotelID)
			if r.Hotel != nil {
				hotel = r.Hotel.Name
			}
			table.AddRow(
				strconv.Itoa(r.ID), hotel, r.Number, r.Type,
				strconv.Itoa(r.Capacity), fmt.Sprintf("%.2f", r.PricePerNight),
			)
			ids = append(ids, r.ID)
		}
		w := output.NewWriter(output.ParseFormat(listFormat))
		if err := w.WriteListing(output.Listing{Table: table, Raw: page.Data, IDs: ids}); err != nil {
			return err
		}
		printPageFooter(w, page)
		return nil
	},
}

var listRolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		page, err := client.ListRoles(cmd.Context(), listQuery(), api.RoleFilters{})
		if err != nil {
			return err
		}
		table := output.NewTable("ID", "Name", "Permissions")
		ids := make([]int, 0, len(page.Data))
		for _, r := range page.Data {
			perms := make([]string, 0, len(r.Permissions))
			for _, perm := range r.Permissions {
				perms = append(perms, perm.Name)
			}
			table.AddRow(strconv.Itoa(r.ID), r.Name, strings.Join(perms, ", "))
			ids = append(ids, r.ID)
		}
		w := output.NewWriter(output.ParseFormat(listFormat))
		if err := w.WriteListing(output.Listing{Table: table, Raw: page.Data, IDs: ids}); err != nil {
			return err
		}
		printPageFooter(w, page)
		return nil
	},
}

var listPermissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "List the permission catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		page, err := client.ListPermissions(cmd.Context(), listQuery())
		if err != nil {
			return err
		}
		table := output.NewTable("ID", "Name")
		ids := make([]int, 0, len(page.Data))
		for _, p := range page.Data {
			table.AddRow(strconv.Itoa(p.ID), p.Name)
			ids = append(ids, p.ID)
		}
		w := output.NewWriter(output.ParseFormat(listFormat))
		if err := w.WriteListing(output.Listing{Table: table, Raw: page.Data, IDs: ids}); err != nil {
			return err
		}
		printPageFooter(w, page)
		return nil
	},
}

var listUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		page, err := client.ListUsers(cmd.Context(), listQuery(), api.UserFilters{})
		if err != nil {
			return err
		}
		table := output.NewTable("ID", "Name", "Email", "Roles")
		ids := make([]int, 0, len(page.Data))
		for _, u := range page.Data {
			table.AddRow(strconv.Itoa(u.ID), u.Name, u.Email, strings.Join(u.RoleNames(), ", "))
			ids = append(ids, u.ID)
		}
		w := output.NewWriter(output.ParseFormat(listFormat))
		if err := w.WriteListing(output.Listing{Table: table, Raw: page.Data, IDs: ids}); err != nil {
			return err
		}
		printPageFooter(w, page)
		return nil
	},
}

func init() {
	listCmd.PersistentFlags().IntVar(&listPage, "page", 1, "page to fetch")
	listCmd.PersistentFlags().IntVar(&listPerPage, "per-page", 15, "records per page")
	listCmd.PersistentFlags().StringVar(&listSort, "sort", "", "column to sort by")
	listCmd.PersistentFlags().BoolVar(&listDesc, "desc", false, "sort descending")
	listCmd.PersistentFlags().StringVarP(&listFormat, "output", "o", "table", "output format (table, json, yaml, quiet)")

	listCmd.AddCommand(listCitiesCmd)
	listCmd.AddCommand(listAirportsCmd)
	listCmd.AddCommand(listFlightsCmd)
	listCmd.AddCommand(listHotelsCmd)
	listCmd.AddCommand(listRoomsCmd)
	listCmd.AddCommand(listRolesCmd)
	listCmd.AddCommand(listPermissionsCmd)
	listCmd.AddCommand(listUsersCmd)
	rootCmd.AddCommand(listCmd)
}
