package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
)

type checkoutResult struct {
	insert *driver.InsertOneResult
	delete *driver.DeleteResult
}

// FinalizeCheckout records the payment and removes the referenced cart items.
//
// With atomicCheckout enabled both writes run inside a single transaction,
// so a payment record can never persist without its cart cleanup. Disabled,
// the writes run sequentially without rollback: the delete is attempted even
// if the insert failed, and a crash between the two leaves the payment
// without cleanup.
func (s *Storage) FinalizeCheckout(ctx context.Context, payment interface{}, cartItemIds []string) (*driver.InsertOneResult, *driver.DeleteResult, error) {
	oids, err := parseIds(cartItemIds)
	if err != nil {
		return nil, nil, err
	}
	filter := bson.M{"_id": bson.M{"$in": oids}}

	payments := s.db.Collection(CollPayments)
	cart := s.db.Collection(CollCart)

	if s.atomicCheckout {
		session, err := s.client.StartSession()
		if err != nil {
			return nil, nil, err
		}
		defer session.EndSession(ctx)

		result, err := session.WithTransaction(ctx, func(sc driver.SessionContext) (interface{}, error) {
			ins, err := payments.InsertOne(sc, payment)
			if err != nil {
				return nil, err
			}
			del, err := cart.DeleteMany(sc, filter)
			if err != nil {
				return nil, err
			}
			return checkoutResult{ins, del}, nil
		})
		if err != nil {
			return nil, nil, err
		}
		r := result.(checkoutResult)
		return r.insert, r.delete, nil
	}

	ins, insertErr := payments.InsertOne(ctx, payment)
	del, deleteErr := cart.DeleteMany(ctx, filter)
	if insertErr != nil {
		return ins, del, insertErr
	}
	return ins, del, deleteErr
}
