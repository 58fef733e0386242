package repository

import (
	"context"
	"fmt"

	"github.com/zhaoyk90/estate_crm/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LoadCustomers 读取全部客户
func LoadCustomers(ctx context.Context) ([]models.Customer, error) {
	cursor, err := Collection(CustomersCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("查询客户失败: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("解析客户数据失败: %w", err)
	}
	return customers, nil
}

// LoadActivities 读取全部活动记录
func LoadActivities(ctx context.Context) ([]models.Activity, error) {
	cursor, err := Collection(ActivitiesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("查询活动记录失败: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("解析活动数据失败: %w", err)
	}
	return activities, nil
}

// LoadMeetings 读取全部带看安排
func LoadMeetings(ctx context.Context) ([]models.Meeting, error) {
	cursor, err := Collection(MeetingsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("查询带看安排失败: %w", err)
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, fmt.Errorf("解析带看数据失败: %w", err)
	}
	return meetings, nil
}

// LoadSnapshot 读取三张集合的完整快照
// 视图引擎每次重算都吃整份物化快照，不做按客户预分组
func LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	customers, err := LoadCustomers(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := LoadActivities(ctx)
	if err != nil {
		return nil, err
	}
	meetings, err := LoadMeetings(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Snapshot{
		Customers:  customers,
		Activities: activities,
		Meetings:   meetings,
	}, nil
}

// upsertByID 按 _id 整条覆盖写入
func upsertByID(ctx context.Context, coll *mongo.Collection, id string, doc interface{}) error {
	opts := options.Replace().SetUpsert(true)
	_, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts)
	return err
}

// RestoreSnapshot 按 id 覆盖写入快照中的全部记录
func RestoreSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	for _, customer := range snapshot.Customers {
		if err := upsertByID(ctx, Collection(CustomersCollection), customer.ID, customer); err != nil {
			return fmt.Errorf("恢复客户 %s 失败: %w", customer.ID, err)
		}
	}
	for _, activity := range snapshot.Activities {
		if err := upsertByID(ctx, Collection(ActivitiesCollection), activity.ID, activity); err != nil {
			return fmt.Errorf("恢复活动 %s 失败: %w", activity.ID, err)
		}
	}
	for _, meeting := range snapshot.Meetings {
		if err := upsertByID(ctx, Collection(MeetingsCollection), meeting.ID, meeting); err != nil {
			return fmt.Errorf("恢复带看 %s 失败: %w", meeting.ID, err)
		}
	}
	return nil
}
