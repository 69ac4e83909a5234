// Package models содержит доменные структуры для пользователей зала и расписаний занятий,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Статусы и роли пользователя. Роль Trainer выставляется только
// переходом статуса Pending -> Accepted, другого пути нет.
const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"

	RoleTrainee = "Trainee"
	RoleTrainer = "Trainer"
)

// User основная модель пользователя (посетителя или тренера),
// используемая в бизнес-логике и хранилище. Идентификатор назначает база при вставке.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	Country        string             `bson:"country,omitempty" json:"country,omitempty"`
	Specialization string             `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Experience     string             `bson:"experience,omitempty" json:"experience,omitempty"`
	Status         string             `bson:"status,omitempty" json:"status,omitempty"`
	Role           string             `bson:"role,omitempty" json:"role,omitempty"`
	Salary         *float64           `bson:"salary,omitempty" json:"salary,omitempty"`
}

// ClassSchedule модель слота занятия. Список bookings только растёт,
// добавление идёт атомарным $push без предварительного чтения.
type ClassSchedule struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TrainerID string             `bson:"trainerId" json:"trainerId"`
	Date      string             `bson:"date" json:"date"`
	StartTime string             `bson:"startTime" json:"startTime"`
	EndTime   string             `bson:"endTime" json:"endTime"`
	Bookings  []string           `bson:"bookings,omitempty" json:"bookings,omitempty"`
}

// DummyUser используется для приёма данных регистрации из JSON-запроса,
// прежде чем конвертировать их в User.
type DummyUser struct {
	Name           string `json:"name"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Country        string `json:"country"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	Status         string `json:"status"`
}

// DummyStatusUpdate тело запроса на смену статуса пользователя.
type DummyStatusUpdate struct {
	Status string `json:"Status" validate:"required"`
	Role   string `json:"Role"`
}

// DummyEditUser тело запроса на частичное редактирование профиля.
// Поля-указатели: nil означает "поле не трогать".
type DummyEditUser struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	Country        *string `json:"country"`
	Specialization *string `json:"specialization"`
	Experience     *string `json:"experience"`
}

// DummySalaryUpdate тело запроса на установку зарплаты тренера.
type DummySalaryUpdate struct {
	Salary float64 `json:"Salary" validate:"required"`
}

// DummySchedule тело запроса на создание слота занятия.
type DummySchedule struct {
	TrainerID string `json:"trainerId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

// DummyBooking тело запроса на запись пользователя в слот.
type DummyBooking struct {
	UserID string `json:"userId" validate:"required"`
}
