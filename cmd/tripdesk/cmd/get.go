package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"tripdesk/internal/cli/output"

	"github.com/spf13/cobra"
)

var getFormat string

// getCmd groups the single-record fetches
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch a single platform record by id",
	Long: `Fetch one record and print it on stdout. Pair with --output json
to feed the full record into another tool.`,
}

// parseRecordID parses the positional id argument
func parseRecordID(args []string) (int, error) {
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

var getCityCmd = &cobra.Command{
	Use:   "city <id>",
	Short: "Fetch a city",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseRecordID(args)
		if err != nil {
			return err
		}
		client, _, err := newClient()
		if err != nil {
			return err
		}
		c, err := client.GetCity(cmd.Context(), id)
		if err != nil {
			return err
		}
		return output.NewWriter(output.ParseFormat(getFormat)).WriteRecord(output.Record{
			Fields: [][2]string{
				{"ID", strconv.Itoa(c.ID)},
				{"Name", c.Name},
			},
			Raw: c,
			ID:  c.ID,
		})
	},
}

var getAirportCmd = &cobra.Command{
	Use:   "airport <id>",
	Short: "Fetch an airport",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseRecordID(args)
		if err != nil {
			return err
		}
		client, _, err := newClient()
		if err != nil {
			return err
		}
		a, err := client.GetAirport(cmd.Context(), id)
		if err != nil {
			return err
		}
		city := strconv.Itoa(a.CityID)
		if a.City != nil {
			city = a.City.Name
		}
		return output.NewWriter(output.ParseFormat(getFormat)).WriteRecord(output.Record{
			Fields: [][2]string{
				{"ID", strconv.Itoa(a.ID)},
				{"Name", a.Name},
				{"Code", a.Code},
				{"City", city},
			},
			Raw: a,
			ID:  a.ID,
		})
	},
}

var getFlightCmd = &cobra.Command{
	Use:   "flight <id>",
	Short: "Fetch a flight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseRecordID(args)
		if err != nil {
			return err
		}
		client, _, err := newClient()
		if err != nil {
			return err
		}
		f, err := client.GetFlight(cmd.Context(), id)
		if err != nil {
			return err
		}
		depart := strconv.Itoa(f.DepartureAirportID)
		if f.DepartureAirport != nil {
			depart = f.DepartureAirport.Code
		}
		arrive := strconv.Itoa(f.ArrivalAirportID)
		if f.ArrivalAirport != nil {
			arrive = f.ArrivalAirport.Code
		}
		return output.NewWriter(output.ParseFormat(getFormat)).WriteRecord(output.Record{
			Fields: [][2]string{
				{"ID", strconv.Itoa(f.ID)},
				{"Number", f.Number},
				{"From", depart},
				{"To", arrive},
				{"Departs", f.DepartureTime},
				{"Arrives", f.ArrivalTime},
				{"Price", fmt.Sprintf("%.2f", f.Price)},
				{"Seats", fmt.Sprintf("%d/%d", f.SeatsAvailable, f.SeatsTotal)},
			},
			Raw: f,
			ID:  f.ID,
		})
	},
}

var getHotelCmd = &cobra.Command{
	Use:   "hotel <id>",
	Short: "Fetch a hotel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseRecordID(args)
		if err != nil {
			return err
		}
		client, _, err := newClient()
		if err != nil {
			return err
		}
		h, err := client.GetHotel(cmd.Context(), id)
		if err != nil {
			return err
		}
		city := strconv.Itoa(h.CityID)
		if h.City != nil {
			city = h.City.Name
		}
		return output.NewWriter(output.ParseFormat(getFormat)).WriteRecord(output.Record{
			Fields: [][2]string{
				{"ID", strconv.Itoa(h.ID)},
				{"Name", h.Name},
				{"City", city},
				{"Stars", strconv.Itoa(h.Stars)},
				{"Address", h.Address},
				{"Description", h.Description},
			},
			Raw: h,
			ID:  h.ID,
		})
	},
}

var getRoomCmd = &cobra.Command{
	Use:   "room <id>",
	Short: "Fetch a room",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseRecordID(args)
		if err != nil {
			return err
		}
		client, _, err := newClient()
		if err != nil {
			return err
		}
		r, err := client.GetRoom(cmd.Context(), id)
		if err != nil {
			return err
		}
		hotel := strconv.Itoa(r.HotelID)
		if r.Hotel != nil {
			hotel = r.Hotel.Name
		}
		return output.NewWriter(output.ParseFormat(getFormat)).WriteRecord(output.Record{
			Fields: [][2]string{
				{"ID", strconv.Itoa(r.ID)},
				{"Hotel", hotel},
				{"Number", r.Number},
				{"Type", r.Type},
				{"Capacity", strconv.Itoa(r.Capacity)},
				{"Price/night", fmt.Sprintf("%.2f", r.PricePerNight)},
			},
			Raw: r,
			ID:  r.ID,
		})
	},
}

var getRoleCmd = &cobra.Command{
	Use:   "role <id>",
	Short: "Fetch a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseRecordID(args)
		if err != nil {
			return err
		}
		client, _, err := newClient()
		if err != nil {
			return err
		}
		r, err := client.GetRole(cmd.Context(), id)
		if err != nil {
			return err
		}
		perms := make([]string, 0, len(r.Permissions))
		for _, p := range r.Permissions {
			perms = append(perms, p.Name)
		}
		return output.NewWriter(output.ParseFormat(getFormat)).WriteRecord(output.Record{
			Fields: [][2]string{
				{"ID", strconv.Itoa(r.ID)},
				{"Name", r.Name},
				{"Permissions", strings.Join(perms, ", ")},
			},
			Raw: r,
			ID:  r.ID,
		})
	},
}

var getUserCmd = &cobra.Command{
	Use:   "user <id>",
	Short: "Fetch a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseRecordID(args)
		if err != nil {
			return err
		}
		client, _, err := newClient()
		if err != nil {
			return err
		}
		u, err := client.GetUser(cmd.Context(), id)
		if err != nil {
			return err
		}
		return output.NewWriter(output.ParseFormat(getFormat)).WriteRecord(output.Record{
			Fields: [][2]string{
				{"ID", strconv.Itoa(u.ID)},
				{"Name", u.Name},
				{"Email", u.Email},
				{"Roles", strings.Join(u.RoleNames(), ", ")},
			},
			Raw: u,
			ID:  u.ID,
		})
	},
}

func init() {
	getCmd.PersistentFlags().StringVarP(&getFormat, "output", "o", "table", "output format (table, json, yaml, quiet)")

	getCmd.AddCommand(getCityCmd)
	getCmd.AddCommand(getAirportCmd)
	getCmd.AddCommand(getFlightCmd)
	getCmd.AddCommand(getHotelCmd)
	getCmd.AddCommand(getRoomCmd)
	getCmd.AddCommand(getRoleCmd)
	getCmd.AddCommand(getUserCmd)
	rootCmd.AddCommand(getCmd)
}
