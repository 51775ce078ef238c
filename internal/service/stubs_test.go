package service

import (
	"context"

	"waxclub/internal/models"
	"waxclub/internal/repository"
)

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getSomeFn       func(context.Context, []string) ([]models.User, error)
	searchFn        func(context.Context, string) ([]models.User, error)
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, string) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetSome(ctx context.Context, usernames []string) ([]models.User, error) {
	return s.getSomeFn(ctx, usernames)
}
func (s *userRepoStub) Search(ctx context.Context, username string) ([]models.User, error) {
	return s.searchFn(ctx, username)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, username string) error {
	return s.deleteFn(ctx, username)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(context.Context, *models.User) error { return nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getSomeFn:       func(context.Context, []string) ([]models.User, error) { return nil, nil },
		searchFn:        func(context.Context, string) ([]models.User, error) { return nil, nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, string) error { return nil },
	}
}

type clubRepoStub struct {
	createFn  func(context.Context, *models.Club) error
	getByIDFn func(context.Context, uint) (*models.Club, error)
	listFn    func(context.Context) ([]models.Club, error)
	updateFn  func(context.Context, *models.Club) error
	deleteFn  func(context.Context, uint) error
}

func (s *clubRepoStub) Create(ctx context.Context, club *models.Club) error {
	return s.createFn(ctx, club)
}
func (s *clubRepoStub) GetByID(ctx context.Context, id uint) (*models.Club, error) {
	return s.getByIDFn(ctx, id)
}
func (s *clubRepoStub) List(ctx context.Context, _ repository.ClubFilters) ([]models.Club, error) {
	return s.listFn(ctx)
}
func (s *clubRepoStub) Update(ctx context.Context, club *models.Club) error {
	return s.updateFn(ctx, club)
}
func (s *clubRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopClubRepo() *clubRepoStub {
	return &clubRepoStub{
		createFn:  func(context.Context, *models.Club) error { return nil },
		getByIDFn: func(context.Context, uint) (*models.Club, error) { return nil, nil },
		listFn:    func(context.Context) ([]models.Club, error) { return nil, nil },
		updateFn:  func(context.Context, *models.Club) error { return nil },
		deleteFn:  func(context.Context, uint) error { return nil },
	}
}

type membershipRepoStub struct {
	createFn         func(context.Context, *models.Membership) error
	getFn            func(context.Context, string, uint) (*models.Membership, error)
	listByUsernameFn func(context.Context, string) ([]models.Membership, error)
	listByClubFn     func(context.Context, uint) ([]models.Membership, error)
	deleteFn         func(context.Context, string, uint) error
	deleteByClubFn   func(context.Context, uint) error
}

func (s *membershipRepoStub) Create(ctx context.Context, m *models.Membership) error {
	return s.createFn(ctx, m)
}
func (s *membershipRepoStub) Get(ctx context.Context, username string, clubID uint) (*models.Membership, error) {
	return s.getFn(ctx, username, clubID)
}
func (s *membershipRepoStub) ListByUsername(ctx context.Context, username string) ([]models.Membership, error) {
	return s.listByUsernameFn(ctx, username)
}
func (s *membershipRepoStub) ListByClub(ctx context.Context, clubID uint) ([]models.Membership, error) {
	return s.listByClubFn(ctx, clubID)
}
func (s *membershipRepoStub) Delete(ctx context.Context, username string, clubID uint) error {
	return s.deleteFn(ctx, username, clubID)
}
func (s *membershipRepoStub) DeleteByClub(ctx context.Context, clubID uint) error {
	return s.deleteByClubFn(ctx, clubID)
}

func noopMembershipRepo() *membershipRepoStub {
	return &membershipRepoStub{
		createFn:         func(context.Context, *models.Membership) error { return nil },
		getFn:            func(context.Context, string, uint) (*models.Membership, error) { return nil, nil },
		listByUsernameFn: func(context.Context, string) ([]models.Membership, error) { return nil, nil },
		listByClubFn:     func(context.Context, uint) ([]models.Membership, error) { return nil, nil },
		deleteFn:         func(context.Context, string, uint) error { return nil },
		deleteByClubFn:   func(context.Context, uint) error { return nil },
	}
}

type invitationRepoStub struct {
	createFn         func(context.Context, *models.Invitation) error
	getFn            func(context.Context, uint, string) (*models.Invitation, error)
	listByUsernameFn func(context.Context, string) ([]models.Invitation, error)
	deleteFn         func(context.Context, uint, string) error
	deleteByClubFn   func(context.Context, uint) error
}

func (s *invitationRepoStub) Create(ctx context.Context, inv *models.Invitation) error {
	return s.createFn(ctx, inv)
}
func (s *invitationRepoStub) Get(ctx context.Context, clubID uint, username string) (*models.Invitation, error) {
	return s.getFn(ctx, clubID, username)
}
func (s *invitationRepoStub) ListByUsername(ctx context.Context, username string) ([]models.Invitation, error) {
	return s.listByUsernameFn(ctx, username)
}
func (s *invitationRepoStub) Delete(ctx context.Context, clubID uint, username string) error {
	return s.deleteFn(ctx, clubID, username)
}
func (s *invitationRepoStub) DeleteByClub(ctx context.Context, clubID uint) error {
	return s.deleteByClubFn(ctx, clubID)
}

func noopInvitationRepo() *invitationRepoStub {
	return &invitationRepoStub{
		createFn:         func(context.Context, *models.Invitation) error { return nil },
		getFn:            func(context.Context, uint, string) (*models.Invitation, error) { return nil, nil },
		listByUsernameFn: func(context.Context, string) ([]models.Invitation, error) { return nil, nil },
		deleteFn:         func(context.Context, uint, string) error { return nil },
		deleteByClubFn:   func(context.Context, uint) error { return nil },
	}
}

type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uint) (*models.Post, error)
	listFn         func(context.Context, uint) ([]models.Post, error)
	listForClubsFn func(context.Context, []uint) ([]models.Post, error)
	updateFn       func(context.Context, *models.Post) error
	deleteFn       func(context.Context, uint) error
	deleteByClubFn func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, clubID uint) ([]models.Post, error) {
	return s.listFn(ctx, clubID)
}
func (s *postRepoStub) ListForClubs(ctx context.Context, clubIDs []uint) ([]models.Post, error) {
	return s.listForClubsFn(ctx, clubIDs)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) DeleteByClub(ctx context.Context, clubID uint) error {
	return s.deleteByClubFn(ctx, clubID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:       func(context.Context, *models.Post) error { return nil },
		getByIDFn:      func(context.Context, uint) (*models.Post, error) { return nil, nil },
		listFn:         func(context.Context, uint) ([]models.Post, error) { return nil, nil },
		listForClubsFn: func(context.Context, []uint) ([]models.Post, error) { return nil, nil },
		updateFn:       func(context.Context, *models.Post) error { return nil },
		deleteFn:       func(context.Context, uint) error { return nil },
		deleteByClubFn: func(context.Context, uint) error { return nil },
	}
}

type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(context.Context, *models.Comment) error { return nil },
		getByIDFn:    func(context.Context, uint) (*models.Comment, error) { return nil, nil },
		listByPostFn: func(context.Context, uint) ([]models.Comment, error) { return nil, nil },
		updateFn:     func(context.Context, *models.Comment) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
	}
}

type voteRepoStub struct {
	createFn      func(context.Context, *models.Vote) error
	getFn         func(context.Context, uint, string) (*models.Vote, error)
	listByPostFn  func(context.Context, uint) ([]models.Vote, error)
	updateLikedFn func(context.Context, uint, string, bool) error
	deleteFn      func(context.Context, uint, string) error
}

func (s *voteRepoStub) Create(ctx context.Context, vote *models.Vote) error {
	return s.createFn(ctx, vote)
}
func (s *voteRepoStub) Get(ctx context.Context, postID uint, username string) (*models.Vote, error) {
	return s.getFn(ctx, postID, username)
}
func (s *voteRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Vote, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *voteRepoStub) UpdateLiked(ctx context.Context, postID uint, username string, liked bool) error {
	return s.updateLikedFn(ctx, postID, username, liked)
}
func (s *voteRepoStub) Delete(ctx context.Context, postID uint, username string) error {
	return s.deleteFn(ctx, postID, username)
}

func noopVoteRepo() *voteRepoStub {
	return &voteRepoStub{
		createFn:      func(context.Context, *models.Vote) error { return nil },
		getFn:         func(context.Context, uint, string) (*models.Vote, error) { return nil, nil },
		listByPostFn:  func(context.Context, uint) ([]models.Vote, error) { return nil, nil },
		updateLikedFn: func(context.Context, uint, string, bool) error { return nil },
		deleteFn:      func(context.Context, uint, string) error { return nil },
	}
}
