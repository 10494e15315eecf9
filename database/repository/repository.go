package repository

import (
	actorRepo "mentorloop/database/repository/actor"
	bookingRepo "mentorloop/database/repository/booking"
)

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the ActorRepository interface and constructor.
type ActorRepository = actorRepo.ActorRepository

var NewMongoActorRepo = actorRepo.NewMongoActorRepo
