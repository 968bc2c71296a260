package users

import "cinevault/internal/mongodb"

func MapDbUserToApiUserResponse(userDb mongodb.UserDb) UserResponse {
	return UserResponse{
		Id:        userDb.Id,
		Name:      userDb.Name,
		Email:     userDb.Email,
		Role:      userDb.Role,
		AvatarURL: userDb.AvatarURL,
	}
}
