package domain

// Participant is the denormalized view of a user taking part in a conversation.
type Participant struct {
	ID           string   `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Type         UserType `json:"type" validate:"enum"`
	ProfileImage *string  `json:"profileImage,omitempty" validate:"omitnil,uri"`
}

func participantFields() []field {
	return []field{req("id"), req("name"), req("type"), opt("profileImage")}
}

// ParticipantOf builds the participant entry for u.
func ParticipantOf(u User) Participant {
	return Participant{
		ID:           u.ID,
		Name:         u.FullName(),
		Type:         u.UserType,
		ProfileImage: u.ProfileImage,
	}
}
