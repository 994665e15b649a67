package service

import (
	"github.com/systemdesignlab/content-api/internal/config"
	"github.com/systemdesignlab/content-api/internal/repository"
	"github.com/systemdesignlab/content-api/internal/session"
)

type Services struct {
	Auth   *AuthService
	Course *CourseService
	Blog   *BlogService
}

func NewServices(repos *repository.Repositories, codec *session.Codec, cfg *config.Config) *Services {
	return &Services{
		Auth:   NewAuthService(cfg, codec),
		Course: NewCourseService(repos.Course),
		Blog:   NewBlogService(repos.BlogPost),
	}
}
