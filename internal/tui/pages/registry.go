package pages

// All builds every page in sidebar order
func All(app *App) []Page {
	return []Page{
		NewDashboardPage(app),
		NewCitiesPage(app),
		NewAirportsPage(app),
		NewFlightsPage(app),
		NewHotelsPage(app),
		NewRoomsPage(app),
		NewFlightSearchPage(app),
		NewHotelSearchPage(app),
		NewRolesPage(app),
		NewUsersPage(app),
	}
}
