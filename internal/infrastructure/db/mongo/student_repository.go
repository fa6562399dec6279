package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campushq/student-admin-api/internal/core/domain"
)

const studentsCollection = "students"

type StudentRepository struct {
	coll *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{coll: db.Collection(studentsCollection)}
}

type mongoStudent struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	FirstName        string             `bson:"first_name"`
	LastName         string             `bson:"last_name"`
	Email            string             `bson:"email"`
	DateOfBirth      time.Time          `bson:"date_of_birth"`
	EnrolledCourses  []string           `bson:"enrolled_courses"`
	Address          string             `bson:"address,omitempty"`
	PhoneNumber      string             `bson:"phone_number,omitempty"`
	RegistrationDate time.Time          `bson:"registration_date"`
}

func (ms mongoStudent) toDomain() *domain.Student {
	courses := ms.EnrolledCourses
	if courses == nil {
		courses = []string{}
	}
	return &domain.Student{
		ID:               ms.ID.Hex(),
		FirstName:        ms.FirstName,
		LastName:         ms.LastName,
		Email:            ms.Email,
		DateOfBirth:      ms.DateOfBirth.UTC(),
		EnrolledCourses:  courses,
		Address:          ms.Address,
		PhoneNumber:      ms.PhoneNumber,
		RegistrationDate: ms.RegistrationDate.UTC(),
	}
}

func toMongoStudent(s *domain.Student) mongoStudent {
	return mongoStudent{
		FirstName:        s.FirstName,
		LastName:         s.LastName,
		Email:            s.Email,
		DateOfBirth:      s.DateOfBirth.UTC(),
		EnrolledCourses:  s.EnrolledCourses,
		Address:          s.Address,
		PhoneNumber:      s.PhoneNumber,
		RegistrationDate: s.RegistrationDate.UTC(),
	}
}

// Insert persists a new student record. The unique index on email is the
// authoritative duplicate guard; violations map to ErrStudentExists.
func (r *StudentRepository) Insert(ctx context.Context, s *domain.Student) (*domain.Student, error) {
	res, err := r.coll.InsertOne(ctx, toMongoStudent(s))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrStudentExists
		}
		return nil, fmt.Errorf("insert student: %w", err)
	}

	created := *s
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = id.Hex()
	}
	return &created, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*domain.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStudentNotFound
	}

	var ms mongoStudent
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student by id: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*domain.Student, error) {
	var ms mongoStudent
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student by email: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *StudentRepository) List(ctx context.Context) ([]*domain.Student, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []*domain.Student
	for cursor.Next(ctx) {
		var ms mongoStudent
		if err := cursor.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode student: %w", err)
		}
		students = append(students, ms.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Update performs a full replace of the mutable fields and returns the
// updated document. registration_date is deliberately left out of the $set.
func (r *StudentRepository) Update(ctx context.Context, id string, s *domain.Student) (*domain.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStudentNotFound
	}

	update := bson.M{"$set": bson.M{
		"first_name":       s.FirstName,
		"last_name":        s.LastName,
		"email":            s.Email,
		"date_of_birth":    s.DateOfBirth.UTC(),
		"enrolled_courses": s.EnrolledCourses,
		"address":          s.Address,
		"phone_number":     s.PhoneNumber,
	}}

	var ms mongoStudent
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&ms)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStudentNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrStudentExists
		}
		return nil, fmt.Errorf("update student: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrStudentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index backing the student
// uniqueness invariant.
func (r *StudentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "registration_date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
