package service

type App struct {
	Developer *DeveloperService
	Stats     *StatsService
}

func NewApp(developer *DeveloperService, stats *StatsService) *App {
	return &App{
		Developer: developer,
		Stats:     stats,
	}
}
