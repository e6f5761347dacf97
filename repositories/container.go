package repositories

type Repos struct {
	Project ProjectRepo
	Task    TaskRepo
	User    UserRepo
	Team    TeamRepo
	Search  SearchRepo
}

func New() *Repos {
	return &Repos{
		Project: &DBProjectRepo{},
		Task:    &DBTaskRepo{},
		User:    &DBUserRepo{},
		Team:    &DBTeamRepo{},
		Search:  &DBSearchRepo{},
	}
}
