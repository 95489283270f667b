package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lessonlab/backend/internal/dto"
	"github.com/lessonlab/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

type UserService interface {
	GetAllUsers() (*dto.UsersDTO, error)
}

type userService struct {
	studentRepo repository.StudentRepository
	teacherRepo repository.TeacherRepository
}

func NewUserService(studentRepo repository.StudentRepository, teacherRepo repository.TeacherRepository) UserService {
	return &userService{studentRepo: studentRepo, teacherRepo: teacherRepo}
}

func (s *userService) GetAllUsers() (*dto.UsersDTO, error) {
	students, err := s.studentRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch students")
		return nil, fmt.Errorf("fetching students: %w", err)
	}
	teachers, err := s.teacherRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch teachers")
		return nil, fmt.Errorf("fetching teachers: %w", err)
	}

	users := &dto.UsersDTO{
		Students: make([]dto.StudentDTO, 0, len(students)),
		Teachers: make([]dto.TeacherDTO, 0, len(teachers)),
	}
	if err := copier.Copy(&users.Students, &students); err != nil {
		return nil, fmt.Errorf("preparing students response: %w", err)
	}
	if err := copier.Copy(&users.Teachers, &teachers); err != nil {
		return nil, fmt.Errorf("preparing teachers response: %w", err)
	}
	return users, nil
}
